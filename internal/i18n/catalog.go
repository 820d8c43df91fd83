package i18n

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var embeddedTranslations []byte

// Translator looks up localized strings. Implementations fall back to English and then
// to the key itself, so a lookup never fails.
type Translator interface {
	// Text returns a UI string such as "docs_prev".
	Text(lang Language, key string) string
	// DocText returns a documentation label such as "Getting Started".
	DocText(lang Language, key string) string
}

type table struct {
	UI   map[string]string `yaml:"ui"`
	Docs map[string]string `yaml:"docs"`
}

// Catalog is an immutable Translator backed by per-language tables.
type Catalog struct {
	tables map[Language]table
}

var _ Translator = (*Catalog)(nil)

// ParseCatalog decodes a YAML translation document of the form {lang: {ui: {...}, docs: {...}}}.
// Unknown language keys are rejected so typos do not silently disappear.
func ParseCatalog(data []byte) (*Catalog, error) {
	raw := map[string]table{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	c := &Catalog{tables: make(map[Language]table, len(raw))}
	for code, t := range raw {
		l, ok := Parse(code)
		if !ok {
			return nil, fmt.Errorf("translations: unsupported language %q", code)
		}
		c.tables[l] = t
	}
	if _, ok := c.tables[Default]; !ok {
		return nil, fmt.Errorf("translations: missing %q table", Default)
	}
	return c, nil
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(embeddedTranslations)
	if err != nil {
		panic(fmt.Sprintf("embedded translations: %v", err))
	}
	return c
}

func (c *Catalog) Text(lang Language, key string) string {
	return c.lookup(lang, key, func(t table) map[string]string { return t.UI })
}

func (c *Catalog) DocText(lang Language, key string) string {
	return c.lookup(lang, key, func(t table) map[string]string { return t.Docs })
}

// Keys returns the UI keys defined for lang.
func (c *Catalog) Keys(lang Language) []string {
	t := c.tables[lang]
	keys := make([]string, 0, len(t.UI))
	for k := range t.UI {
		keys = append(keys, k)
	}
	return keys
}

func (c *Catalog) lookup(lang Language, key string, pick func(table) map[string]string) string {
	if t, ok := c.tables[lang]; ok {
		if v, ok := pick(t)[key]; ok {
			return v
		}
	}
	if v, ok := pick(c.tables[Default])[key]; ok {
		return v
	}
	return key
}
