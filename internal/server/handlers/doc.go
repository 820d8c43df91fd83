// Package handlers contains the HTTP handlers of the documentation site.
//
// This package provides handlers for:
//   - Homepage, documentation index and documentation pages (HTML)
//   - Search and navigation (JSON)
//   - The language switch
//   - Health checks
//   - Translated 404/500 pages
//
// Each request resolves its display language exactly once and passes it explicitly to
// the docs service. Errors are classified with the foundation/errors package; JSON
// routes report them through the HTTPErrorAdapter and HTML routes render error pages.
package handlers
