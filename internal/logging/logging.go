package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/tessro/spin/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. Records go to the rotating log file when
// one is configured, and to stderr when verbose is set. With neither, the
// returned logger discards everything. The returned closer releases the log
// file and is never nil.
func New(cfg config.LogConfig, verbose bool) (zerolog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return zerolog.Nop(), closer, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    1,
			MaxBackups: 2,
		}
		writers = append(writers, lj)
		closer = lj
	}

	level := ParseLevel(cfg.Level)
	if verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		level = zerolog.DebugLevel
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
