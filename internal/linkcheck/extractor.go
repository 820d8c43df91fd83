package linkcheck

import (
	"io"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/foundation/errors"
)

// docsPrefix is the URL path under which pages are served.
const docsPrefix = "/docs/"

// Link represents an extracted link from rendered page HTML.
type Link struct {
	URL  string // href or src as written
	Text string // link text or alt text
	Tag  string // a or img
}

// ExtractLinks returns every a[href] and img[src] in r, in document order.
func ExtractLinks(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse HTML").Build()
	}

	var links []Link
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a":
				if href := getAttr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Text: extractText(n), Tag: "a"})
				}
			case "img":
				if src := getAttr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Text: getAttr(n, "alt"), Tag: "img"})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return links, nil
}

// TargetSlug reports which documentation page link points at when it appears on the
// page for from. Links leaving the site or pointing elsewhere on it return false.
func TargetSlug(from, link string) (string, bool) {
	if link == "" || strings.HasPrefix(link, "#") {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	base := &url.URL{Path: docsPrefix + from}
	p := path.Clean(base.ResolveReference(u).Path)
	if !strings.HasPrefix(p, docsPrefix) {
		return "", false
	}
	slug := strings.TrimSuffix(strings.TrimPrefix(p, docsPrefix), docs.FileExt)
	if slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	return slug, true
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractText extracts text content from an HTML node and its children.
func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}

	return strings.TrimSpace(text.String())
}
