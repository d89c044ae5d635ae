package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Playlist.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("playlist: %w", err))
	}
	if err := c.Menu.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("menu: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks PlaylistConfig for errors.
func (c *PlaylistConfig) Validate() error {
	if c.MaxTitleLength < 0 {
		return errors.New("max_title_length must be non-negative")
	}
	if c.MaxSongs < 0 {
		return errors.New("max_songs must be non-negative")
	}
	if c.MaxSongs > 0 && len(c.Songs) > c.MaxSongs {
		return fmt.Errorf("songs lists %d entries but max_songs is %d", len(c.Songs), c.MaxSongs)
	}
	return nil
}

// Validate checks MenuConfig for errors.
func (c *MenuConfig) Validate() error {
	switch c.Mode {
	case "", MenuModeAuto, MenuModePlain, MenuModeInteractive:
		// valid
	default:
		return fmt.Errorf("invalid mode: %s (must be auto, plain, or interactive)", c.Mode)
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
