package docs

import (
	"github.com/marzneshin/docsite/internal/i18n"
)

// Documentation label keys. They are looked up with Translator.DocText.
const (
	LabelGettingStarted = "Getting Started"
	LabelConfiguration  = "Configuration"
	LabelHelp           = "Help"
	LabelAbout          = "About"
	LabelInstallation   = "Installation"
	LabelOverview       = "Overview"
	LabelAPIReference   = "API Reference"
	LabelTroubleshoot   = "Troubleshooting"
)

// PageEntry is one documentation page as it appears in navigation.
type PageEntry struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Section is a named, ordered group of pages.
type Section struct {
	Name  string      `json:"name"`
	Pages []PageEntry `json:"pages"`
}

// Tree is the ordered list of sections. It is built per call for one language.
type Tree struct {
	Sections []Section `json:"sections"`
}

// FlatEntry is a page together with the name of the section it belongs to.
type FlatEntry struct {
	Page    PageEntry `json:"page"`
	Section string    `json:"section"`
}

// FlatList is every page of a Tree in reading order.
type FlatList []FlatEntry

type pageLayout struct {
	label string
	slug  string
}

type sectionLayout struct {
	label string
	pages []pageLayout
}

// layout is the fixed site structure. Only labels are translated; slugs and order are
// the same in every language.
var layout = []sectionLayout{
	{label: LabelGettingStarted, pages: []pageLayout{
		{LabelAbout, "about"},
		{LabelInstallation, "installation"},
		{LabelGettingStarted, "getting-started"},
		{LabelOverview, "overview"},
	}},
	{label: LabelConfiguration, pages: []pageLayout{
		{LabelConfiguration, "configuration"},
		{LabelAPIReference, "api-reference"},
	}},
	{label: LabelHelp, pages: []pageLayout{
		{LabelTroubleshoot, "troubleshooting"},
	}},
}

// BuildTree returns a fresh navigation tree with labels translated into lang.
func BuildTree(lang i18n.Language, tr i18n.Translator) Tree {
	sections := make([]Section, 0, len(layout))
	for _, sec := range layout {
		pages := make([]PageEntry, 0, len(sec.pages))
		for _, p := range sec.pages {
			pages = append(pages, PageEntry{Title: tr.DocText(lang, p.label), Slug: p.slug})
		}
		sections = append(sections, Section{Name: tr.DocText(lang, sec.label), Pages: pages})
	}
	return Tree{Sections: sections}
}

// Section returns the section with the given (translated) name.
func (t Tree) Section(name string) (Section, bool) {
	for _, s := range t.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Slugs returns every slug in reading order.
func (t Tree) Slugs() []string {
	var slugs []string
	for _, s := range t.Sections {
		for _, p := range s.Pages {
			slugs = append(slugs, p.Slug)
		}
	}
	return slugs
}

// Flatten concatenates the pages of all sections in tree order.
func Flatten(t Tree) FlatList {
	var flat FlatList
	for _, s := range t.Sections {
		for _, p := range s.Pages {
			flat = append(flat, FlatEntry{Page: p, Section: s.Name})
		}
	}
	return flat
}

// Locate returns the index of the first entry with slug.
func (f FlatList) Locate(slug string) (int, bool) {
	for i, e := range f {
		if e.Page.Slug == slug {
			return i, true
		}
	}
	return -1, false
}
