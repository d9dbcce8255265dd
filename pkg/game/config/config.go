// Package config loads and persists user settings.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// Config holds the user-tunable settings.
type Config struct {
	// TileSize is the board tile size in pixels for the graphical renderer.
	TileSize int `yaml:"tile_size"`

	// ImagesDir is the directory holding the room art.
	ImagesDir string `yaml:"images_dir"`

	// KeyLayout is "qwerty" or "azerty". Both layouts are always bound;
	// this only selects which keys the UI shows in hints.
	KeyLayout string `yaml:"key_layout"`

	// DatabasePath is the run history database file. A leading ~ expands to
	// the user's home directory.
	DatabasePath string `yaml:"database_path"`

	// Language selects the UI language ("" uses the system locale).
	Language string `yaml:"language"`

	// path is the file the settings were loaded from, used for write-back.
	// Empty when running on embedded defaults.
	path string
}

var (
	currentMutex  sync.Mutex
	currentConfig *Config
)

func defaults() *Config {
	cfg := &Config{}
	// The embedded file is compiled in and always parses.
	_ = yaml.Unmarshal(defaultConfig, cfg)
	return cfg
}

// userPath returns the per-user config file location.
func userPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blueprince", "config.yaml")
}

// Load reads the settings and makes them current. Search order: the explicit
// path (errors if unreadable), the user config, ./config.yaml, then the
// embedded defaults.
func Load(explicit string) (*Config, error) {
	cfg := defaults()

	if explicit != "" {
		if err := readInto(cfg, explicit); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg.path = explicit
		setCurrent(cfg)
		return cfg, nil
	}

	for _, candidate := range []string{userPath(), "config.yaml"} {
		if candidate == "" {
			continue
		}
		if err := readInto(cfg, candidate); err == nil {
			cfg.path = candidate
			break
		}
	}

	setCurrent(cfg)
	return cfg, nil
}

func readInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func setCurrent(cfg *Config) {
	currentMutex.Lock()
	currentConfig = cfg
	currentMutex.Unlock()
}

// Current returns the active settings, loading defaults when Load has not
// been called yet.
func Current() *Config {
	currentMutex.Lock()
	defer currentMutex.Unlock()

	if currentConfig == nil {
		currentConfig = defaults()
	}
	return currentConfig
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// SetTileSize records a new tile size and writes the settings back to their
// file, creating the user config when none existed.
func (c *Config) SetTileSize(size int) error {
	c.TileSize = size
	return c.save()
}

func (c *Config) save() error {
	path := c.path
	if path == "" {
		path = userPath()
		if path == "" {
			return fmt.Errorf("config: no writable location")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.path = path
	return nil
}
