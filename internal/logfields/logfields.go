package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySlug       = "slug"
	KeyQuery      = "query"
	KeyLang       = "lang"
	KeySection    = "section"
	KeyResults    = "results"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyRoute      = "route"
	KeyRequestID  = "request_id"
	KeyRemoteAddr = "remote_addr"
	KeyUserAgent  = "user_agent"
	KeyDurationMS = "duration_ms"
	KeyAddr       = "addr"
	KeyError      = "error"
)

func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Query(q string) slog.Attr        { return slog.String(KeyQuery, q) }
func Lang(l string) slog.Attr         { return slog.String(KeyLang, l) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Results(n int) slog.Attr         { return slog.Int(KeyResults, n) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func RequestID(id string) slog.Attr   { return slog.String(KeyRequestID, id) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
