package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("builder sets fields", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "docsite.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "docsite.yaml", file)
	})

	t.Run("wrapping keeps the cause reachable", func(t *testing.T) {
		err := WrapError(fs.ErrNotExist, CategoryFileSystem, "read failed").Build()
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "read failed")
		assert.Contains(t, err.Error(), fs.ErrNotExist.Error())
	})

	t.Run("sentinel matching ignores context and cause", func(t *testing.T) {
		sentinel := NotFoundError("page not found").Build()
		err := WrapError(fs.ErrNotExist, CategoryNotFound, "page not found").WithContext("slug", "about").Build()
		assert.ErrorIs(t, err, sentinel)

		other := NotFoundError("something else").Build()
		assert.NotErrorIs(t, err, other)
	})

	t.Run("found through fmt wrapping", func(t *testing.T) {
		inner := ContentError("bad markdown").Build()
		wrapped := fmt.Errorf("render: %w", inner)
		c, ok := AsClassified(wrapped)
		require.True(t, ok)
		assert.Equal(t, CategoryContent, c.Category())
		assert.True(t, HasCategory(wrapped, CategoryContent))
		assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := ValidationError("bad slug").Build()
		derived := base.WithContext("slug", "../etc")
		_, ok := base.Context().Get("slug")
		assert.False(t, ok)
		v, ok := derived.Context().GetString("slug")
		require.True(t, ok)
		assert.Equal(t, "../etc", v)
	})
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		builder  *ErrorBuilder
		category ErrorCategory
		severity ErrorSeverity
		retry    RetryStrategy
	}{
		{"ConfigError", ConfigError("x"), CategoryConfig, SeverityFatal, RetryUserAction},
		{"ValidationError", ValidationError("x"), CategoryValidation, SeverityError, RetryNever},
		{"NotFoundError", NotFoundError("x"), CategoryNotFound, SeverityWarning, RetryNever},
		{"ContentError", ContentError("x"), CategoryContent, SeverityError, RetryNever},
		{"FileSystemError", FileSystemError("x"), CategoryFileSystem, SeverityError, RetryBackoff},
		{"ServerError", ServerError("x"), CategoryServer, SeverityFatal, RetryNever},
		{"InternalError", InternalError("x"), CategoryInternal, SeverityFatal, RetryNever},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.builder.Build()
			assert.Equal(t, tt.category, err.Category())
			assert.Equal(t, tt.severity, err.Severity())
			assert.Equal(t, tt.retry, err.RetryStrategy())
		})
	}
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{}.Set("k1", "v1").Set("shared", "original")
	b := ErrorContext{}.Set("k2", "v2").Set("shared", "overridden")

	merged := a.Merge(b)
	assert.Equal(t, "v1", merged["k1"])
	assert.Equal(t, "v2", merged["k2"])
	assert.Equal(t, "overridden", merged["shared"])

	var nilCtx ErrorContext
	assert.Equal(t, b, nilCtx.Merge(b))
}
