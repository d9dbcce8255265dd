package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()

	if cfg.TileSize != 56 {
		t.Errorf("tile size = %d, want 56", cfg.TileSize)
	}
	if cfg.ImagesDir != "images" {
		t.Errorf("images dir = %q, want %q", cfg.ImagesDir, "images")
	}
	if cfg.KeyLayout != "qwerty" {
		t.Errorf("key layout = %q, want %q", cfg.KeyLayout, "qwerty")
	}
	if cfg.DatabasePath == "" {
		t.Error("database path empty")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("tile_size: 80\nimages_dir: art\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TileSize != 80 {
		t.Errorf("tile size = %d, want 80", cfg.TileSize)
	}
	if cfg.ImagesDir != "art" {
		t.Errorf("images dir = %q, want %q", cfg.ImagesDir, "art")
	}
	// Unset keys keep their defaults.
	if cfg.KeyLayout != "qwerty" {
		t.Errorf("key layout = %q, want the default", cfg.KeyLayout)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config did not error")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TileSize != 56 {
		t.Errorf("tile size = %d, want the default 56", cfg.TileSize)
	}
}

func TestSetTileSizeWritesBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tile_size: 56\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.SetTileSize(72); err != nil {
		t.Fatalf("SetTileSize: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TileSize != 72 {
		t.Errorf("tile size after write-back = %d, want 72", reloaded.TileSize)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	if got := ExpandPath("~/runs.db"); got != "/home/tester/runs.db" {
		t.Errorf("ExpandPath = %q, want %q", got, "/home/tester/runs.db")
	}
	if got := ExpandPath("/abs/runs.db"); got != "/abs/runs.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty path changed: %q", got)
	}
}
