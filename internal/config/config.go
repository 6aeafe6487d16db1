// ABOUTME: Warehouse configuration: data directory, athlete profile, and
// ABOUTME: readiness thresholds the planner consults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/peteebot/pete/internal/storage"
)

// Config stores pete's configuration.
type Config struct {
	// DataDir is the root directory for the warehouse database.
	// Supports ~ expansion. Defaults to ~/.local/share/pete.
	DataDir string `json:"data_dir,omitempty"`

	// ChronologicalAge is the athlete's age in whole years, the anchor
	// of every body-age derivation.
	ChronologicalAge int `json:"chronological_age,omitempty"`

	// ReadinessSleepMin is the average nightly asleep minutes below
	// which the planner downgrades a block's intensity.
	ReadinessSleepMin int `json:"readiness_sleep_min,omitempty"`

	// ReadinessRHRMax is the average resting heart rate above which the
	// planner downgrades a block's intensity.
	ReadinessRHRMax int `json:"readiness_rhr_max,omitempty"`
}

const (
	defaultChronoAge = 44
	defaultSleepMin  = 390
	defaultRHRMax    = 62
)

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetChronologicalAge returns the configured age, defaulting to 44.
func (c *Config) GetChronologicalAge() int {
	if c.ChronologicalAge <= 0 {
		return defaultChronoAge
	}
	return c.ChronologicalAge
}

// GetReadinessSleepMin returns the sleep floor, defaulting to 390 minutes.
func (c *Config) GetReadinessSleepMin() int {
	if c.ReadinessSleepMin <= 0 {
		return defaultSleepMin
	}
	return c.ReadinessSleepMin
}

// GetReadinessRHRMax returns the resting-HR ceiling, defaulting to 62.
func (c *Config) GetReadinessRHRMax() int {
	if c.ReadinessRHRMax <= 0 {
		return defaultRHRMax
	}
	return c.ReadinessRHRMax
}

// DBPath returns the path of the warehouse database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "pete.db")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pete", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
