package docs

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/marzneshin/docsite/internal/logfields"
	"github.com/marzneshin/docsite/internal/markdown"
)

// FileExt is the extension of documentation sources: <root>/<slug>.md.
const FileExt = ".md"

// slugPattern keeps URL-supplied slugs inside the content root.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a well-formed slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Loader reads documentation sources from a content root and renders them.
type Loader struct {
	root     string
	renderer *markdown.Renderer
	logger   *slog.Logger
}

// NewLoader returns a Loader for root. A nil renderer gets the default options and a
// nil logger uses slog.Default().
func NewLoader(root string, renderer *markdown.Renderer, logger *slog.Logger) *Loader {
	if renderer == nil {
		renderer = markdown.NewRenderer(markdown.Options{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{root: root, renderer: renderer, logger: logger}
}

// Root returns the content root directory.
func (l *Loader) Root() string { return l.root }

// Path returns the file a slug maps to. It does not validate the slug.
func (l *Loader) Path(slug string) string {
	return filepath.Join(l.root, slug+FileExt)
}

// Raw returns the markdown source for slug. It fails with ErrPageNotFound when the
// slug is malformed or the file is absent, and with ErrContentRead otherwise.
func (l *Loader) Raw(slug string) ([]byte, error) {
	if !ValidSlug(slug) {
		return nil, notFound(slug, nil)
	}
	path := l.Path(slug)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, notFound(slug, err)
	case err != nil:
		return nil, readFailure(slug, path, err)
	case !utf8.Valid(data):
		return nil, readFailure(slug, path, errors.New("content is not valid UTF-8"))
	}
	return data, nil
}

// Load reads and renders slug. Both failure kinds are logged here; callers only
// decide how to present them.
func (l *Loader) Load(slug string) (*markdown.Document, error) {
	src, err := l.Raw(slug)
	if err != nil {
		if IsNotFound(err) {
			l.logger.Warn("Documentation page not found", logfields.Slug(slug), logfields.Path(l.Path(slug)))
		} else {
			l.logger.Error("Failed to read documentation page", logfields.Slug(slug), logfields.Error(err))
		}
		return nil, err
	}

	doc, err := l.renderer.Render(src)
	if err != nil {
		err = readFailure(slug, l.Path(slug), err)
		l.logger.Error("Failed to render documentation page", logfields.Slug(slug), logfields.Error(err))
		return nil, err
	}
	return doc, nil
}

// Files lists the slugs of every markdown file directly under the content root, in
// directory order. Files whose names are not valid slugs are skipped.
func (l *Loader) Files() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, readFailure("", l.root, err)
	}
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != FileExt {
			continue
		}
		slug := e.Name()[:len(e.Name())-len(FileExt)]
		if ValidSlug(slug) {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}
