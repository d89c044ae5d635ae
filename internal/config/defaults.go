package config

import "github.com/tessro/spin/internal/playlist"

// Menu modes.
const (
	MenuModeAuto        = "auto"
	MenuModePlain       = "plain"
	MenuModeInteractive = "interactive"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Playlist: PlaylistConfig{
			MaxTitleLength: playlist.DefaultMaxTitleLength,
			MaxSongs:       0,
		},
		Menu: MenuConfig{
			Mode: MenuModeAuto,
		},
		TUI: TUIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Playlist
	if c.Playlist.MaxTitleLength == 0 {
		c.Playlist.MaxTitleLength = d.Playlist.MaxTitleLength
	}

	// Menu
	if c.Menu.Mode == "" {
		c.Menu.Mode = d.Menu.Mode
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
