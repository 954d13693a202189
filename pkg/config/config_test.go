package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Corrector.MaxEdits != 2 {
		t.Errorf("default max_edits = %d, want 2", cfg.Corrector.MaxEdits)
	}
	if !cfg.Corrector.EnableFilter {
		t.Error("filtering should be enabled by default")
	}
	if cfg.Server.MaxLimit <= 0 {
		t.Errorf("default max_limit = %d, want > 0", cfg.Server.MaxLimit)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Corrector.MaxEdits = 3
	cfg.Server.MaxLimit = 16

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Corrector.MaxEdits != 3 {
		t.Errorf("loaded max_edits = %d, want 3", loaded.Corrector.MaxEdits)
	}
	if loaded.Server.MaxLimit != 16 {
		t.Errorf("loaded max_limit = %d, want 16", loaded.Server.MaxLimit)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spellserve", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Corrector.MaxEdits != 2 {
		t.Errorf("created config max_edits = %d, want 2", cfg.Corrector.MaxEdits)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[corrector]\nmax_edits = 1\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Corrector.MaxEdits != 1 {
		t.Errorf("max_edits = %d, want 1 from file", cfg.Corrector.MaxEdits)
	}
	// Missing sections keep their defaults.
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("max_limit = %d, want default 64", cfg.Server.MaxLimit)
	}
}
