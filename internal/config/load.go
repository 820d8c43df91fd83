package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
)

// envFiles are read before the config so ${VAR} references can use them. Variables
// already present in the process environment are never overwritten.
var envFiles = []string{".env", ".env.local"}

// Load reads, defaults and validates the configuration file at path. A missing file is
// not an error when allowMissing is set; defaults are used instead.
func Load(path string, allowMissing bool) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && allowMissing:
		data = nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, foundationerrors.ConfigError("configuration file not found").
			WithContext("path", path).
			Build()
	case err != nil:
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML (after ${VAR} expansion), applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to unmarshal config").Build()
	}

	if err := NewDefaultApplier().ApplyDefaults(&cfg); err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to apply defaults").Build()
	}

	if err := cfg.Validate(); err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryValidation, "configuration validation failed").Build()
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	_ = NewDefaultApplier().ApplyDefaults(&cfg)
	return &cfg
}

func loadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to load env file").
				WithContext("path", p).
				Build()
		}
	}
	return nil
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundationerrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).Build()
	}

	example := Default()
	example.Server.TrustProxy = true
	example.Content.StaticDir = "static"
	example.Monitoring.Metrics.Enabled = true

	data, err := yaml.Marshal(example)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
