// ABOUTME: Tests for config loading, saving, and defaults.
// ABOUTME: Uses temp directories to avoid touching real user config.
package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DataDir != "" || cfg.ListenAddr != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
	if cfg.GetListenAddr() != ":8080" {
		t.Errorf("GetListenAddr = %s, want :8080", cfg.GetListenAddr())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftlog", "config.json")

	cfg := &Config{DataDir: "/tmp/liftlog-data", ListenAddr: "127.0.0.1:9000"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %s, want %s", got.DataDir, cfg.DataDir)
	}
	if got.GetListenAddr() != "127.0.0.1:9000" {
		t.Errorf("GetListenAddr = %s, want 127.0.0.1:9000", got.GetListenAddr())
	}
}

func TestDBPathUsesDataDir(t *testing.T) {
	cfg := &Config{DataDir: "/srv/liftlog"}
	if got := cfg.DBPath(); got != "/srv/liftlog/liftlog.db" {
		t.Errorf("DBPath = %s", got)
	}
}

func TestExpandPath(t *testing.T) {
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %s", got)
	}
	if got := ExpandPath("~/liftlog"); got == "~/liftlog" {
		t.Error("tilde not expanded")
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty path changed: %s", got)
	}
}
