package docs

import (
	"strings"

	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/logfields"
)

// MaxSearchResults caps the number of search hits.
const MaxSearchResults = 10

// SearchResult is one search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Section string `json:"section"`
}

// Search does a case-insensitive substring match of query against every page title
// and raw markdown source, in tree order. Results are not ranked: the first
// MaxSearchResults matches in reading order are returned. This is a full scan per
// query and is only meant for a small, fixed set of pages.
//
// Pages whose file is missing or unreadable are skipped; they never fail the search.
func (s *Service) Search(query string, lang i18n.Language) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return make([]SearchResult, 0)
	}
	results := s.scan(q, s.Tree(lang))
	s.logger.Debug("Search completed", logfields.Query(q), logfields.Lang(lang.String()), logfields.Results(len(results)))
	return results
}

// scan walks tree in order and collects at most MaxSearchResults matches for the
// normalized query q.
func (s *Service) scan(q string, tree Tree) []SearchResult {
	results := make([]SearchResult, 0)
	for _, section := range tree.Sections {
		for _, page := range section.Pages {
			if len(results) == MaxSearchResults {
				s.logger.Debug("Search result limit reached", logfields.Query(q), logfields.Results(len(results)))
				return results
			}
			if s.matches(q, page) {
				results = append(results, SearchResult{Title: page.Title, Slug: page.Slug, Section: section.Name})
			}
		}
	}
	return results
}

func (s *Service) matches(q string, page PageEntry) bool {
	raw, err := s.loader.Raw(page.Slug)
	if err != nil {
		if IsNotFound(err) {
			s.logger.Warn("Skipping search of missing documentation file", logfields.Slug(page.Slug))
		} else {
			s.logger.Error("Skipping unreadable documentation file", logfields.Slug(page.Slug), logfields.Error(err))
		}
		return false
	}
	return strings.Contains(strings.ToLower(page.Title), q) ||
		strings.Contains(strings.ToLower(string(raw)), q)
}
