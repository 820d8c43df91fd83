// Package config loads the docsite YAML configuration.
//
// Loading runs in a fixed order: .env files, ${VAR} expansion, YAML decoding, defaults,
// then validation. Callers only ever see a fully defaulted, valid *Config.
package config

import (
	"net"
	"strconv"
	"time"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "docsite.yaml"

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Content    ContentConfig    `yaml:"content"`
	Site       SiteConfig       `yaml:"site"`
	Session    SessionConfig    `yaml:"session"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	TrustProxy      bool          `yaml:"trust_proxy"` // honour X-Forwarded-Proto/Host
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ContentConfig locates documentation sources and static assets.
type ContentConfig struct {
	Root           string `yaml:"root"`
	StaticDir      string `yaml:"static_dir,omitempty"`
	HighlightStyle string `yaml:"highlight_style,omitempty"`
	// StrictErrors reports unreadable pages as server errors instead of 404s.
	StrictErrors bool `yaml:"strict_errors"`
}

// SiteConfig holds values shown in page chrome.
type SiteConfig struct {
	Title     string `yaml:"title"`
	GitHubURL string `yaml:"github_url"`
}

// SessionConfig controls the language preference cookie.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name"`
	MaxAge     time.Duration `yaml:"max_age"`
	// Negotiate falls back to Accept-Language when no explicit choice exists.
	Negotiate bool `yaml:"negotiate"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MonitoringConfig groups the metrics and health endpoints.
type MonitoringConfig struct {
	Metrics MonitoringMetrics `yaml:"metrics"`
	Health  MonitoringHealth  `yaml:"health"`
}

// MonitoringMetrics represents metrics configuration.
type MonitoringMetrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// MonitoringHealth represents health check configuration.
type MonitoringHealth struct {
	Path string `yaml:"path"`
}
