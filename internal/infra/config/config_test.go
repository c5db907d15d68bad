package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Image.TimeoutSeconds != 15 {
		t.Errorf("image timeout = %ds, want 15s", cfg.Image.TimeoutSeconds)
	}
	if cfg.Deck.MaxSlides != 100 {
		t.Errorf("max slides = %d, want 100", cfg.Deck.MaxSlides)
	}
	if cfg.Deck.DefaultTheme != "dialogue" {
		t.Errorf("default theme = %q, want dialogue", cfg.Deck.DefaultTheme)
	}
	if cfg.Storage.Type != "local" {
		t.Errorf("storage type = %q, want local", cfg.Storage.Type)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
log:
  level: debug
  format: json
deck:
  max_slides: 30
  default_theme: ocean
limiter:
  max_concurrent: 2
  requests_per_second: 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Deck.MaxSlides != 30 || cfg.Deck.DefaultTheme != "ocean" {
		t.Errorf("deck config = %+v", cfg.Deck)
	}
	if cfg.Limiter.MaxConcurrent != 2 || cfg.Limiter.RequestsPerSecond != 4 {
		t.Errorf("limiter config = %+v", cfg.Limiter)
	}
	// Unset sections keep their defaults.
	if cfg.Image.MaxRetries != 3 {
		t.Errorf("image max retries = %d, want default 3", cfg.Image.MaxRetries)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("IMAGE_TIMEOUT_SECONDS", "30")
	t.Setenv("DECK_MAX_SLIDES", "12")
	t.Setenv("DECK_DEFAULT_THEME", "forest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Image.TimeoutSeconds != 30 {
		t.Errorf("image timeout = %ds, want 30s", cfg.Image.TimeoutSeconds)
	}
	if cfg.Deck.MaxSlides != 12 {
		t.Errorf("max slides = %d, want 12", cfg.Deck.MaxSlides)
	}
	if cfg.Deck.DefaultTheme != "forest" {
		t.Errorf("default theme = %q, want forest", cfg.Deck.DefaultTheme)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DECK_MAX_SLIDES", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero max slides")
	}
}
