package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.spinrc, $XDG_CONFIG_HOME/spin/config.toml, ~/.config/spin/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path `spin config init` writes to.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spinrc"
	}
	return filepath.Join(home, ".spinrc")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".spinrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "spin", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Playlist
	if v := os.Getenv("SPIN_PLAYLIST_MAX_TITLE_LENGTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playlist.MaxTitleLength = i
		}
	}
	if v := os.Getenv("SPIN_PLAYLIST_MAX_SONGS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playlist.MaxSongs = i
		}
	}

	// Menu
	if v := os.Getenv("SPIN_MENU_MODE"); v != "" {
		cfg.Menu.Mode = v
	}

	// TUI
	if v := os.Getenv("SPIN_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("SPIN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SPIN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
