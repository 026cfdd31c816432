package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qcdn.toml")

	content := "data = \"/srv/qcdn\"\nmode = \"development\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Data != "/srv/qcdn" || cfg.Mode != ModeDevelopment || cfg.LogLevel != "debug" {
		t.Errorf("file overlay not applied: %+v", cfg)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Bind != Default().Bind {
		t.Errorf("bind = %q, want default", cfg.Bind)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load of missing explicit file succeeded")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qcdn.toml")

	if err := os.WriteFile(path, []byte("bind = \"127.0.0.1:9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBind, "127.0.0.1:9999")
	t.Setenv(EnvMode, ModeDevelopment)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Bind != "127.0.0.1:9999" {
		t.Errorf("env did not override file: bind = %q", cfg.Bind)
	}

	if cfg.Mode != ModeDevelopment {
		t.Errorf("env mode not applied: %q", cfg.Mode)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	if _, err := Load(""); err == nil {
		t.Error("invalid log level accepted")
	}

	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvMode, "staging")

	if _, err := Load(""); err == nil {
		t.Error("invalid mode accepted")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"trace": slog.LevelDebug,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", in, err)
		}

		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel accepted unknown level")
	}
}
