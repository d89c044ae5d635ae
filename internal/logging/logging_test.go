package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tessro/spin/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"fatal": zerolog.FatalLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewDisabled(t *testing.T) {
	logger, closer, err := New(config.LogConfig{Level: "debug"}, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if closer == nil {
		t.Fatal("closer is nil")
	}
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("level = %v, want disabled", logger.GetLevel())
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spin.log")

	logger, closer, err := New(config.LogConfig{Level: "info", File: path}, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("title", "Heroes").Msg("song added")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"title":"Heroes"`) {
		t.Errorf("log file = %q, want the info record", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("log file = %q, debug record should be filtered", out)
	}
}
