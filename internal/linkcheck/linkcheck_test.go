package linkcheck

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
)

func newChecker(t *testing.T, files map[string]string) *Checker {
	t.Helper()
	root := t.TempDir()
	for slug, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, slug+docs.FileExt), []byte(content), 0o600))
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := docs.NewService(docs.NewLoader(root, nil, logger), i18n.DefaultCatalog(), docs.WithLogger(logger))
	return NewChecker(svc, logger)
}

func completeSite() map[string]string {
	return map[string]string{
		"about":           "See [installation](installation).",
		"installation":    "Back to [about](/docs/about) or the [repo](https://github.com/marzneshin/marzneshin).",
		"getting-started": "x",
		"overview":        "x",
		"configuration":   "x",
		"api-reference":   "x",
		"troubleshooting": "Jump to [top](#top).",
	}
}

func TestRun_CleanSite(t *testing.T) {
	report, err := newChecker(t, completeSite()).Run()
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 7, report.Checked)
	assert.False(t, report.HasDeadLinks())
}

func TestRun_FindsProblems(t *testing.T) {
	files := completeSite()
	delete(files, "overview")
	files["about"] = "See [setup](./setup.md) and [install](installation)."
	files["release-notes"] = "Read the [faq](/docs/faq)."

	report, err := newChecker(t, files).Run()
	require.NoError(t, err)

	assert.True(t, report.HasDeadLinks())
	assert.Equal(t, 1, report.Count(KindMissingFile))
	assert.Equal(t, 1, report.Count(KindUnregistered))
	assert.Equal(t, 2, report.Count(KindBrokenLink))

	assert.Contains(t, report.Issues, Issue{Kind: KindBrokenLink, Slug: "about", Target: "setup", Detail: "./setup.md"})
	assert.Contains(t, report.Issues, Issue{Kind: KindBrokenLink, Slug: "release-notes", Target: "faq", Detail: "/docs/faq"})
}

func TestRun_UnregisteredOnlyIsNotDead(t *testing.T) {
	files := completeSite()
	files["changelog"] = "nothing to see"
	report, err := newChecker(t, files).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(KindUnregistered))
	assert.False(t, report.HasDeadLinks())
}

func TestRun_MissingRoot(t *testing.T) {
	c := newChecker(t, nil)
	require.NoError(t, os.RemoveAll(c.svc.Loader().Root()))
	_, err := c.Run()
	assert.Error(t, err)
}

func TestExtractLinks(t *testing.T) {
	links, err := ExtractLinks(strings.NewReader(`<p><a href="/docs/about">About <b>us</b></a><img src="/static/x.png" alt="x"><a name="anchor"></a></p>`))
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, Link{URL: "/docs/about", Text: "Aboutus", Tag: "a"}, links[0])
	assert.Equal(t, Link{URL: "/static/x.png", Text: "x", Tag: "img"}, links[1])
}

func TestTargetSlug(t *testing.T) {
	tests := []struct {
		link string
		want string
		ok   bool
	}{
		{"installation", "installation", true},
		{"./installation.md", "installation", true},
		{"/docs/overview#intro", "overview", true},
		{"/docs/overview?lang=fa", "overview", true},
		{"#section", "", false},
		{"https://example.com/docs/about", "", false},
		{"/static/img.png", "", false},
		{"../index", "", false},
		{"/docs/", "", false},
		{"mailto:team@example.com", "", false},
	}
	for _, tt := range tests {
		got, ok := TargetSlug("about", tt.link)
		assert.Equal(t, tt.ok, ok, tt.link)
		assert.Equal(t, tt.want, got, tt.link)
	}
}
