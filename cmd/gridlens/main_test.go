package main

import (
	"os"
	"path/filepath"
	"testing"

	"gridlens/internal/config"
)

func TestResolveColors(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		want        bool
	}{
		{config.ColorAlways, false, true},
		{config.ColorAlways, true, true},
		{config.ColorNever, true, false},
		{config.ColorNever, false, false},
		{config.ColorAuto, true, true},
		{config.ColorAuto, false, false},
	}
	for _, tt := range tests {
		if got := resolveColors(tt.mode, tt.interactive); got != tt.want {
			t.Errorf("resolveColors(%q, %v) = %v, want %v", tt.mode, tt.interactive, got, tt.want)
		}
	}
}

func TestLoadConfigFlagPrecedence(t *testing.T) {
	t.Setenv("GRIDLENS_COLOR", "")

	// File sets rows=4; an explicit flag must win over it.
	path := filepath.Join(t.TempDir(), "gridlens.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  rows: 4\n  cols: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath = path
	defer func() {
		cfgPath = ""
		rootCmd.Flags().Set("rows", "10")
	}()

	if err := rootCmd.Flags().Set("rows", "3"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Grid.Rows != 3 {
		t.Errorf("flag should override file: rows = %d, want 3", cfg.Grid.Rows)
	}
	if cfg.Grid.Cols != 6 {
		t.Errorf("file should override default: cols = %d, want 6", cfg.Grid.Cols)
	}
	if cfg.Grid.Min != -100 {
		t.Errorf("unset values keep defaults: min = %d, want -100", cfg.Grid.Min)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("GRIDLENS_COLOR", "never")
	cfgPath = ""

	cfg, err := loadConfig(versionCmd)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Output.Color != config.ColorNever {
		t.Errorf("env should override default: color = %s, want never", cfg.Output.Color)
	}
}
