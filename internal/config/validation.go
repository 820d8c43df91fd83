package config

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// cookieNamePattern is the RFC 6265 token subset used for cookie names.
var cookieNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Validate checks the whole configuration. Errors are keyed by YAML path.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Content),
		validation.Field(&c.Site),
		validation.Field(&c.Session),
		validation.Field(&c.Logging),
		validation.Field(&c.Monitoring),
	)
}

func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Host, validation.Required),
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.ReadTimeout, validation.Min(0)),
		validation.Field(&s.WriteTimeout, validation.Min(0)),
		validation.Field(&s.ShutdownTimeout, validation.Required),
	)
}

func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required),
	)
}

func (s SiteConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.GitHubURL, is.URL),
	)
}

func (s SessionConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.CookieName, validation.Required, validation.Match(cookieNamePattern)),
		validation.Field(&s.MaxAge, validation.Required),
	)
}

func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
		validation.Field(&l.Format, validation.In(LogFormatJSON, LogFormatText)),
	)
}

func (m MonitoringConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Metrics, validation.By(func(any) error {
			if !m.Metrics.Enabled {
				return nil
			}
			if m.Metrics.Path == m.Health.Path {
				return validation.NewError("validation_path_conflict", "metrics path must differ from the health path")
			}
			if m.Metrics.Path == HealthzPath {
				return validation.NewError("validation_path_reserved", "path is reserved by the site")
			}
			return nil
		})),
		validation.Field(&m.Health),
	)
}

func (m MonitoringMetrics) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.Required, validation.By(absolutePath), validation.By(unreservedPath)),
	)
}

func (m MonitoringHealth) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Path, validation.Required, validation.By(absolutePath), validation.By(unreservedPath)),
	)
}

func absolutePath(value any) error {
	s, _ := value.(string)
	if s != "" && !strings.HasPrefix(s, "/") {
		return validation.NewError("validation_absolute_path", "must start with /")
	}
	return nil
}

// HealthzPath is always served as a health alias. It may be the configured health path
// but never the metrics path.
const HealthzPath = "/healthz"

// reservedRoutes are the site's own paths. Entries ending in / reserve the whole subtree.
var reservedRoutes = []string{"/", "/docs", "/docs/", "/search", "/api/nav", "/set-language/", "/static/"}

// unreservedPath rejects monitoring paths that would shadow a site route or that the
// router would read as a pattern.
func unreservedPath(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if strings.ContainsAny(s, "{} \t") {
		return validation.NewError("validation_path_pattern", "must be a literal path")
	}
	for _, r := range reservedRoutes {
		if s == r || (strings.HasSuffix(r, "/") && r != "/" && strings.HasPrefix(s, r)) {
			return validation.NewError("validation_path_reserved", "path is reserved by the site")
		}
	}
	return nil
}
