package config

// Config is the root configuration structure.
type Config struct {
	Playlist PlaylistConfig `toml:"playlist"`
	Menu     MenuConfig     `toml:"menu"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// PlaylistConfig holds playlist limits and the songs loaded at startup.
type PlaylistConfig struct {
	MaxTitleLength int      `toml:"max_title_length"`
	MaxSongs       int      `toml:"max_songs"`
	Songs          []string `toml:"songs"`
}

// MenuConfig holds console menu settings.
type MenuConfig struct {
	Mode string `toml:"mode"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
