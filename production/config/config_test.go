package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("PRODUCTION_ADDRESS", ":9191")
	t.Setenv("CUTOFF", "07:30")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Address != ":9191" {
		t.Fatalf("expected address from env, got %q", cfg.Address)
	}
	if cfg.Cutoff != "07:30" {
		t.Fatalf("expected cutoff from env, got %q", cfg.Cutoff)
	}
	if cfg.TimeZone != "Local" || cfg.StrictFlavors {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "log_level: ERROR\nproduction_address: \":7000\"\nstrict_flavors: true\ntime_zone: UTC\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "ERROR" || cfg.Address != ":7000" || !cfg.StrictFlavors || cfg.TimeZone != "UTC" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Cutoff != "08:00:00" {
		t.Fatalf("expected default cutoff, got %q", cfg.Cutoff)
	}
}
