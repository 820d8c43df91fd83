// Package linkcheck finds dead links in the documentation: navigation entries without
// a file, files the navigation never reaches, and internal links to missing pages.
package linkcheck

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/logfields"
)

// IssueKind classifies a finding.
type IssueKind string

const (
	// KindMissingFile is a navigation entry whose markdown file does not exist.
	KindMissingFile IssueKind = "missing_file"
	// KindUnreadable is a file that exists but cannot be read or rendered.
	KindUnreadable IssueKind = "unreadable"
	// KindBrokenLink is an internal link to a page that does not exist.
	KindBrokenLink IssueKind = "broken_link"
	// KindUnregistered is a file on disk that is not in the navigation. It still renders
	// under a fallback title, so it is reported but not counted as dead.
	KindUnregistered IssueKind = "unregistered"
)

// Issue is one finding.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Slug   string    `json:"slug"`
	Target string    `json:"target,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// Report is the result of a check run.
type Report struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// HasDeadLinks reports whether any issue would send a reader to a missing page.
func (r *Report) HasDeadLinks() bool {
	for _, is := range r.Issues {
		if is.Kind != KindUnregistered {
			return true
		}
	}
	return false
}

// Count returns the number of issues of kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, is := range r.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

// Checker runs link checks against a docs service.
type Checker struct {
	svc    *docs.Service
	logger *slog.Logger
}

// NewChecker returns a Checker. A nil logger uses slog.Default().
func NewChecker(svc *docs.Service, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{svc: svc, logger: logger}
}

// Run checks every page once. Slugs are the same in every language, so the default
// language tree is enough.
func (c *Checker) Run() (*Report, error) {
	loader := c.svc.Loader()
	navSlugs := c.svc.Tree(i18n.Default).Slugs()

	onDisk, err := loader.Files()
	if err != nil {
		return nil, err
	}

	report := &Report{Issues: []Issue{}}
	exists := make(map[string]bool, len(onDisk))
	for _, s := range onDisk {
		exists[s] = true
	}

	pages := make([]string, 0, len(navSlugs)+len(onDisk))
	for _, slug := range navSlugs {
		if !exists[slug] {
			report.Issues = append(report.Issues, Issue{Kind: KindMissingFile, Slug: slug, Detail: loader.Path(slug)})
			continue
		}
		pages = append(pages, slug)
	}
	for _, slug := range onDisk {
		if !slices.Contains(navSlugs, slug) {
			report.Issues = append(report.Issues, Issue{Kind: KindUnregistered, Slug: slug, Detail: loader.Path(slug)})
			pages = append(pages, slug)
		}
	}

	for _, slug := range pages {
		report.Checked++
		doc, err := loader.Load(slug)
		if err != nil {
			report.Issues = append(report.Issues, Issue{Kind: KindUnreadable, Slug: slug, Detail: err.Error()})
			continue
		}
		links, err := ExtractLinks(strings.NewReader(doc.HTML))
		if err != nil {
			report.Issues = append(report.Issues, Issue{Kind: KindUnreadable, Slug: slug, Detail: err.Error()})
			continue
		}
		seen := map[string]bool{}
		for _, l := range links {
			target, ok := TargetSlug(slug, l.URL)
			if !ok || exists[target] || seen[target] {
				continue
			}
			seen[target] = true
			report.Issues = append(report.Issues, Issue{Kind: KindBrokenLink, Slug: slug, Target: target, Detail: l.URL})
		}
	}

	c.logger.Info("Link check complete",
		logfields.Results(len(report.Issues)),
		slog.Int("checked", report.Checked),
		slog.Bool("dead_links", report.HasDeadLinks()))
	return report, nil
}
