// Package views holds the embedded HTML templates of the site.
//
// Every page template defines a "content" block and is rendered inside base.html.
// Translated text is reached through the T function carried in PageData, so templates
// never pick a language themselves.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render.
const (
	PageHome    = "index"
	PageDocs    = "docs"
	PageDocPage = "doc_page"
	PageError   = "error"
)

// Site is the chrome shared by every page.
type Site struct {
	Title     string
	GitHubURL string
}

// PageData is the root value handed to every template.
type PageData struct {
	Lang  i18n.Language
	Other i18n.Language // target of the language switch
	T     func(key string) string
	Site  Site
	Title string
	Path  string
	Body  any
}

// Feature is one card on the homepage.
type Feature struct {
	Title string
	Desc  string
}

// HomeBody is the body of the homepage.
type HomeBody struct {
	Features []Feature
}

// DocsBody is the body of the documentation index.
type DocsBody struct {
	Tree docs.Tree
}

// DocPageBody is the body of a documentation page. Content is trusted rendered markdown.
type DocPageBody struct {
	Page    *docs.RenderedPage
	Content template.HTML
}

// ErrorBody is the body of an error page; the fields are translation keys.
type ErrorBody struct {
	Status    int
	TitleKey  string
	DescKey   string
	HintKey   string
	ActionKey string
}

// Views renders the embedded page set.
type Views struct {
	pages map[string]*template.Template
}

// New parses every page template against the base layout.
func New() (*Views, error) {
	base, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parse base layout: %w", err)
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	v := &Views{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		page := strings.TrimSuffix(path.Base(name), ".html")
		if page == "base" {
			continue
		}
		layout, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := layout.ParseFS(templateFS, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		v.pages[page] = layout
	}
	return v, nil
}

// Render executes page into w. Output is buffered so a failing template never leaves
// a half-written response behind.
func (v *Views) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"isCurrent": func(a, b string) bool { return a == b },
}
