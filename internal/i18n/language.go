// Package i18n resolves the UI language of a request and looks up translated strings.
//
// The language is always passed explicitly; nothing in this package keeps per-request state.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Persian Language = "fa"

	// Default is used when no valid language was requested.
	Default = English
)

// supported is ordered: the matcher treats the first entry as the fallback.
var supported = []Language{English, Persian}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Persian})

// Supported returns the supported languages, default first.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Parse accepts an exact supported code ("en", "fa"), ignoring case and surrounding space.
func Parse(code string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, s := range supported {
		if l == s {
			return l, true
		}
	}
	return "", false
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	if l == Persian {
		return language.Persian
	}
	return language.English
}

// Dir returns the text direction for l, suitable for the HTML dir attribute.
func (l Language) Dir() string {
	if l == Persian {
		return "rtl"
	}
	return "ltr"
}

func (l Language) String() string { return string(l) }

// Resolve picks the language for a request. An explicit query value wins, then the
// stored cookie value, then (when non-empty) the Accept-Language header. Anything
// absent or invalid falls through to Default.
func Resolve(query, cookie, acceptLanguage string) Language {
	if l, ok := Parse(query); ok {
		return l
	}
	if l, ok := Parse(cookie); ok {
		return l
	}
	if acceptLanguage != "" {
		return Negotiate(acceptLanguage)
	}
	return Default
}

// Negotiate matches an Accept-Language header against the supported languages.
func Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}
