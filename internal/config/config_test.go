package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme 'solarized-dark', got %q", cfg.Theme)
	}
	if cfg.ProbeURL != "http://127.0.0.1:8000" {
		t.Errorf("expected default probe URL, got %q", cfg.ProbeURL)
	}
	if cfg.FrameRate != 10 {
		t.Errorf("expected frame rate 10, got %d", cfg.FrameRate)
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FrameInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms frame interval, got %v", cfg.FrameInterval())
	}
	cfg.FrameRate = 0
	if cfg.FrameInterval() != 100*time.Millisecond {
		t.Errorf("expected bad frame rate to fall back to 100ms, got %v", cfg.FrameInterval())
	}
	cfg.FrameRate = 4
	if cfg.FrameInterval() != 250*time.Millisecond {
		t.Errorf("expected 250ms frame interval, got %v", cfg.FrameInterval())
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	cfg := DefaultConfig()
	cfg.Theme = "dracula"
	cfg.ProbeURL = "http://probe.lab:9000"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("expected theme 'dracula', got %q", loaded.Theme)
	}
	if loaded.ProbeURL != "http://probe.lab:9000" {
		t.Errorf("expected saved probe URL, got %q", loaded.ProbeURL)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadConfig() should return defaults for missing file, got error: %v", err)
	}
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}
