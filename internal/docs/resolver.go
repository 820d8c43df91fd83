package docs

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/markdown"
)

// RenderedPage is everything needed to display one documentation page.
type RenderedPage struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Content     string             `json:"content"`
	TOC         []markdown.Heading `json:"toc"`
	Tree        Tree               `json:"doc_structure"`
	Prev        *PageEntry         `json:"prev"`
	Next        *PageEntry         `json:"next"`
}

// Resolve loads slug and attaches its title and prev/next neighbours in lang.
// Load failures are returned unchanged (see ErrPageNotFound and ErrContentRead) and no
// navigation is computed for them.
func (s *Service) Resolve(slug string, lang i18n.Language) (*RenderedPage, error) {
	tree := s.Tree(lang)
	flat := Flatten(tree)

	doc, err := s.loader.Load(slug)
	if err != nil {
		return nil, err
	}

	page := &RenderedPage{
		Slug:        slug,
		Title:       FallbackTitle(slug),
		Description: doc.Meta.Description,
		Content:     doc.HTML,
		TOC:         doc.TOC,
		Tree:        tree,
	}

	// A file on disk that is not in the tree still renders, under a derived title.
	if i, ok := flat.Locate(slug); ok {
		page.Title = flat[i].Page.Title
		if i > 0 {
			prev := flat[i-1].Page
			page.Prev = &prev
		}
		if i < len(flat)-1 {
			next := flat[i+1].Page
			page.Next = &next
		}
	}
	return page, nil
}

// FallbackTitle derives a display title from a slug: dashes become spaces and every run
// of letters is title-cased, so a digit also starts a new word ("api-reference" ->
// "Api Reference", "ipv6only" -> "Ipv6Only").
func FallbackTitle(slug string) string {
	caser := cases.Title(language.English)
	text := strings.ReplaceAll(slug, "-", " ")

	var b strings.Builder
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(text[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(text[start:]))
	}
	return b.String()
}
