package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("GetConfigDir() returned empty string")
	}
	// Should end with "netboard"
	if filepath.Base(dir) != "netboard" {
		t.Errorf("expected dir to end with 'netboard', got %q", filepath.Base(dir))
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	expected := filepath.Join(tmp, "netboard")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestGetDataDir(t *testing.T) {
	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("GetDataDir() returned empty string")
	}
	if filepath.Base(dir) != "netboard" {
		t.Errorf("expected dir to end with 'netboard', got %q", filepath.Base(dir))
	}
}

func TestGetSettingsDBPath(t *testing.T) {
	path, err := GetSettingsDBPath()
	if err != nil {
		t.Fatalf("GetSettingsDBPath() error: %v", err)
	}
	if filepath.Base(path) != "settings.db" {
		t.Errorf("expected path to end with 'settings.db', got %q", filepath.Base(path))
	}
}
