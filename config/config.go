package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Git     GitConfig    `json:"git"`
	Picker  PickerConfig `json:"picker"`
	Filters FilterConfig `json:"filters"`
}

// GitConfig holds settings for invoking the version-control backend.
type GitConfig struct {
	Binary  string `json:"binary"`  // Default: "git"
	Backend string `json:"backend"` // Default: "auto" (cli when git is installed, gogit otherwise)
}

// PickerConfig holds defaults for the file-listing front end.
type PickerConfig struct {
	Base     string `json:"base"`     // Default comparison reference
	OnlyMine bool   `json:"onlyMine"` // Filter to the configured identity's commits
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Binary:  "git",
			Backend: "auto",
		},
		Picker: PickerConfig{
			Base:     "HEAD",
			OnlyMine: false,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitpick.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitpick.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".gitpick.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
