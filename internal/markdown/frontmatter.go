package markdown

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// frontMatterKeys are the only keys a leading block may carry to count as front matter.
var frontMatterKeys = map[string]bool{"title": true, "description": true}

// FrontMatter holds the optional metadata block at the top of a page. Pages
// without one yield the zero value.
type FrontMatter struct {
	Title       string `yaml:"title" json:"title,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// SplitFrontMatter separates front matter from the markdown body. A leading "---" only
// opens front matter when it is closed by another "---" line and the block between them
// is a YAML mapping of known keys. Anything else, such as a thematic break, is returned
// untouched as the body.
func SplitFrontMatter(source []byte) (FrontMatter, []byte) {
	block, ok := leadingBlock(source)
	if !ok || !knownMapping(block) {
		return FrontMatter{}, source
	}

	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, source
	}
	return meta, body
}

// leadingBlock returns the text between an opening "---" first line and the next "---" line.
func leadingBlock(source []byte) ([]byte, bool) {
	first, rest, found := bytes.Cut(source, []byte("\n"))
	if !found || string(bytes.TrimRight(first, " \t\r")) != frontMatterDelim {
		return nil, false
	}
	var block []byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if string(bytes.TrimRight(line, " \t\r")) == frontMatterDelim {
			return block, true
		}
		block = append(block, line...)
		block = append(block, '\n')
	}
	return nil, false
}

func knownMapping(block []byte) bool {
	var node yaml.Node
	if err := yaml.Unmarshal(block, &node); err != nil || len(node.Content) == 0 {
		return false
	}
	m := node.Content[0]
	if m.Kind != yaml.MappingNode || len(m.Content) == 0 {
		return false
	}
	for i := 0; i < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode || !frontMatterKeys[key.Value] {
			return false
		}
		if value.Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}
