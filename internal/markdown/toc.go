package markdown

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// Heading is one table-of-contents entry.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// ExtractTOC walks a parsed document and returns its headings in source order.
// IDs are the ones assigned by the auto heading ID parser option, so they match the
// rendered anchors.
func ExtractTOC(root gmast.Node, source []byte) []Heading {
	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		entry := Heading{Level: h.Level, Text: strings.TrimSpace(inlineText(h, source))}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				entry.ID = string(b)
			}
		}
		headings = append(headings, entry)
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

func inlineText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		case *gmast.CodeSpan:
			sb.WriteString(inlineText(t, source))
		default:
			sb.WriteString(inlineText(c, source))
		}
	}
	return sb.String()
}
