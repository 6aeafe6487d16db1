// ABOUTME: Tests for warehouse configuration management.
// ABOUTME: Covers load, save, defaults, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetChronologicalAge(); got != 44 {
		t.Errorf("GetChronologicalAge() = %d, want 44", got)
	}
	if got := cfg.GetReadinessSleepMin(); got != 390 {
		t.Errorf("GetReadinessSleepMin() = %d, want 390", got)
	}
	if got := cfg.GetReadinessRHRMax(); got != 62 {
		t.Errorf("GetReadinessRHRMax() = %d, want 62", got)
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestExplicitValues(t *testing.T) {
	cfg := &Config{
		DataDir:           "/tmp/pete-test",
		ChronologicalAge:  39,
		ReadinessSleepMin: 420,
		ReadinessRHRMax:   58,
	}
	if got := cfg.GetDataDir(); got != "/tmp/pete-test" {
		t.Errorf("GetDataDir() = %q, want /tmp/pete-test", got)
	}
	if got := cfg.GetChronologicalAge(); got != 39 {
		t.Errorf("GetChronologicalAge() = %d, want 39", got)
	}
	if got := cfg.GetReadinessSleepMin(); got != 420 {
		t.Errorf("GetReadinessSleepMin() = %d, want 420", got)
	}
	if got := cfg.GetReadinessRHRMax(); got != 58 {
		t.Errorf("GetReadinessRHRMax() = %d, want 58", got)
	}
}

func TestDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/pete-test"}
	if got := cfg.DBPath(); got != filepath.Join("/tmp/pete-test", "pete.db") {
		t.Errorf("DBPath() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	cases := []struct{ in, want string }{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/pete", filepath.Join(home, "data/pete")},
		{"data/pete", "data/pete"},
	}
	for _, c := range cases {
		if got := ExpandPath(c.in); got != c.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/pete-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "pete-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{
		DataDir:          "/tmp/pete-data",
		ChronologicalAge: 39,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.DataDir != "/tmp/pete-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/pete-data")
	}
	if loaded.ChronologicalAge != 39 {
		t.Errorf("ChronologicalAge mismatch: got %d, want 39", loaded.ChronologicalAge)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	cfg := &Config{ChronologicalAge: 44}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "pete")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	configDir := filepath.Join(tmpDir, "pete")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "pete", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}
