package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, expected %q", cfg.Git.Binary, "git")
	}
	if cfg.Git.Backend != "auto" {
		t.Errorf("Git.Backend = %q, expected %q", cfg.Git.Backend, "auto")
	}
	if cfg.Picker.Base != "HEAD" {
		t.Errorf("Picker.Base = %q, expected %q", cfg.Picker.Base, "HEAD")
	}
	if cfg.Picker.OnlyMine {
		t.Error("Picker.OnlyMine = true, expected false")
	}
	if len(cfg.Filters.Include) != 0 || len(cfg.Filters.Exclude) != 0 {
		t.Errorf("Filters = %+v, expected empty", cfg.Filters)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Git.Binary != "git" || cfg.Picker.Base != "HEAD" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitpick.json")
	content := `{
  "git": {"backend": "gogit"},
  "picker": {"base": "origin/main", "onlyMine": true},
  "filters": {"exclude": ["vendor/**"]}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Git.Backend != "gogit" {
		t.Errorf("Git.Backend = %q, expected %q", cfg.Git.Backend, "gogit")
	}
	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, expected default %q", cfg.Git.Binary, "git")
	}
	if cfg.Picker.Base != "origin/main" || !cfg.Picker.OnlyMine {
		t.Errorf("Picker = %+v", cfg.Picker)
	}
	if len(cfg.Filters.Exclude) != 1 || cfg.Filters.Exclude[0] != "vendor/**" {
		t.Errorf("Filters.Exclude = %v", cfg.Filters.Exclude)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	cfg := DefaultConfig()
	cfg.Picker.Base = "develop"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Picker.Base != "develop" {
		t.Fatalf("Picker.Base = %q, expected %q", loaded.Picker.Base, "develop")
	}
}
