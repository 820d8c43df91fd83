// Package markdown renders documentation sources to HTML with the site's fixed extension set.
package markdown

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultHighlightStyle is the chroma style used when Options.HighlightStyle is empty.
// Output uses CSS classes, so the style only matters for generated stylesheets.
const DefaultHighlightStyle = "github"

// Options controls rendering.
type Options struct {
	HighlightStyle string
}

// Document is the result of rendering one markdown source.
type Document struct {
	HTML string
	TOC  []Heading
	Meta FrontMatter
}

// Renderer converts markdown to HTML. It is stateless after construction and safe
// for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a renderer with fenced code, tables, heading IDs for the table of
// contents, explicit-language-only syntax highlighting and newline-to-<br> conversion.
func NewRenderer(opts Options) *Renderer {
	style := opts.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithGuessLanguage(false),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				highlighting.WithWrapperRenderer(wrapCodeBlock),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
	)
	return &Renderer{md: md}
}

// Render strips optional front matter, parses the body once, collects headings and
// renders HTML from the same AST.
func (r *Renderer) Render(source []byte) (*Document, error) {
	meta, body := SplitFrontMatter(source)

	root := r.md.Parser().Parse(text.NewReader(body))
	doc := &Document{Meta: meta, TOC: ExtractTOC(root, body)}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, body, root); err != nil {
		return nil, err
	}
	doc.HTML = buf.String()
	return doc, nil
}

// wrapCodeBlock puts every fenced block in a div.highlight. Unhighlighted blocks do not get
// chroma's <pre>, so the wrapper supplies pre/code itself and keeps any declared language
// as a language-* class.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="highlight">`)
		if !c.Highlighted() {
			_, _ = w.WriteString("<pre><code")
			if lang, ok := c.Language(); ok && len(lang) > 0 {
				_, _ = w.WriteString(` class="language-`)
				_, _ = w.Write(util.EscapeHTML(lang))
				_ = w.WriteByte('"')
			}
			_ = w.WriteByte('>')
		}
		return
	}
	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}
