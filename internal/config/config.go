// Package config resolves qcdn configuration in four layers: built-in
// defaults, an optional TOML file, QCDN_* environment variables, and
// command-line flags (applied by the command layer on top of the loaded
// config). Later layers win.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// Serve modes. The mode only affects the web server's Cache-Control policy.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Environment variable names for overrides.
const (
	EnvConfig   = "QCDN_CONFIG"
	EnvData     = "QCDN_DATA"
	EnvBind     = "QCDN_BIND"
	EnvHTTPBind = "QCDN_HTTP_BIND"
	EnvLogLevel = "QCDN_LOG_LEVEL"
	EnvMode     = "QCDN_MODE"
	EnvURL      = "QCDN_URL"
)

// Config holds every tunable of the three process roles (writer server,
// web server, client commands). Unused keys are ignored by each role.
type Config struct {
	Data     string `toml:"data"`      // storage root
	Bind     string `toml:"bind"`      // RPC listen address
	HTTPBind string `toml:"http_bind"` // web server listen address
	LogLevel string `toml:"log_level"` // trace|debug|info|warn|error
	Mode     string `toml:"mode"`      // production|development
	URL      string `toml:"url"`       // server address for client commands
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:     "./data",
		Bind:     "0.0.0.0:8080",
		HTTPBind: "0.0.0.0:8081",
		LogLevel: "info",
		Mode:     ModeProduction,
		URL:      "localhost:8080",
	}
}

// Load resolves the file and environment layers. An explicitly given path
// must exist; the QCDN_CONFIG fallback may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overlays QCDN_* environment variables.
func (c *Config) applyEnv() {
	overlay := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	overlay(&c.Data, EnvData)
	overlay(&c.Bind, EnvBind)
	overlay(&c.HTTPBind, EnvHTTPBind)
	overlay(&c.LogLevel, EnvLogLevel)
	overlay(&c.Mode, EnvMode)
	overlay(&c.URL, EnvURL)
}

// Validate rejects unknown enum values early, before any server starts.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Mode != ModeProduction && c.Mode != ModeDevelopment {
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}

	return nil
}

// Production reports whether the long-lived cache policy applies.
func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

// ParseLevel maps the config level names to slog levels. "trace" maps to
// the debug level — slog has no finer tier.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "trace", "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log level %q", s)
	}
}
