package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Grid.Rows != 10 || cfg.Grid.Cols != 10 {
		t.Errorf("expected 10x10 default grid, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Grid.Min != -100 || cfg.Grid.Max != 100 {
		t.Errorf("expected default bounds [-100,100], got [%d,%d]", cfg.Grid.Min, cfg.Grid.Max)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "gridlens.yaml")

	cfg := DefaultConfig()
	cfg.Grid.Rows = 4
	cfg.Grid.Cols = 7
	cfg.Grid.Seed = 42
	cfg.Output.Color = ColorNever

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Grid.Rows != 4 || loaded.Grid.Cols != 7 {
		t.Errorf("expected 4x7, got %dx%d", loaded.Grid.Rows, loaded.Grid.Cols)
	}
	if loaded.Grid.Seed != 42 {
		t.Errorf("expected seed=42, got %d", loaded.Grid.Seed)
	}
	if loaded.Output.Color != ColorNever {
		t.Errorf("expected color=never, got %s", loaded.Output.Color)
	}
	// Unset file values keep their defaults.
	if loaded.Grid.Min != -100 {
		t.Errorf("expected default min=-100, got %d", loaded.Grid.Min)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_BadColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Color = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRIDLENS_COLOR", "never")
	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.Output.Color != ColorNever {
		t.Errorf("expected env override to never, got %s", cfg.Output.Color)
	}

	t.Setenv("GRIDLENS_COLOR", "")
	cfg = DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.Output.Color != ColorAuto {
		t.Errorf("expected auto when env unset, got %s", cfg.Output.Color)
	}
}
