package docs

import (
	"errors"

	ferrors "github.com/marzneshin/docsite/internal/foundation/errors"
)

const (
	msgPageNotFound = "documentation page not found"
	msgContentRead  = "documentation content could not be read"
)

var (
	// ErrPageNotFound means the slug has no markdown file (or is not a valid slug).
	ErrPageNotFound = ferrors.NotFoundError(msgPageNotFound).Build()

	// ErrContentRead means the file exists but reading, decoding or rendering it failed.
	ErrContentRead = ferrors.FileSystemError(msgContentRead).Build()
)

// IsNotFound reports whether err is ErrPageNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

// IsReadFailure reports whether err is ErrContentRead.
func IsReadFailure(err error) bool {
	return errors.Is(err, ErrContentRead)
}

// TreatAsNotFound applies the default outward collapse: both a missing file and a
// failed read are presented as "not found". With strict set, only a missing file is.
func TreatAsNotFound(err error, strict bool) bool {
	if IsNotFound(err) {
		return true
	}
	return !strict && IsReadFailure(err)
}

func notFound(slug string, cause error) error {
	return ferrors.WrapError(cause, ferrors.CategoryNotFound, msgPageNotFound).
		Warning().
		WithContext("slug", slug).
		Build()
}

func readFailure(slug, path string, cause error) error {
	return ferrors.WrapError(cause, ferrors.CategoryFileSystem, msgContentRead).
		Retryable().
		WithContext("slug", slug).
		WithContext("path", path).
		Build()
}
