package handlers

import (
	"net/http"
	"net/url"

	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/logfields"
)

// HandleSetLanguage stores a supported language code in the cookie and sends the client
// back where it came from. Unknown codes are ignored but still redirect.
func (h *Handlers) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if lang, ok := i18n.Parse(code); ok {
		h.setLanguageCookie(w, r, lang)
		h.logger.Debug("Language changed", logfields.Lang(lang.String()))
	}
	http.Redirect(w, r, redirectTarget(r), http.StatusFound)
}

// redirectTarget returns the Referer when it points back at this host, otherwise "/".
func redirectTarget(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	if u.Host != "" && u.Host != r.Host {
		return "/"
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return "/"
	}
	target := u.EscapedPath()
	if target == "" || target[0] != '/' {
		target = "/"
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
