package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/tessro/spin/internal/config"
	"github.com/tessro/spin/internal/playlist"
)

func TestResolveMenuMode(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		plain      bool
		jsonOut    bool
		terminal   bool
		want       string
	}{
		{"plain flag wins", config.MenuModeInteractive, true, false, true, config.MenuModePlain},
		{"configured plain", config.MenuModePlain, false, false, true, config.MenuModePlain},
		{"configured interactive", config.MenuModeInteractive, false, false, false, config.MenuModeInteractive},
		{"auto on terminal", config.MenuModeAuto, false, false, true, config.MenuModeInteractive},
		{"auto when piped", config.MenuModeAuto, false, false, false, config.MenuModePlain},
		{"auto with json", config.MenuModeAuto, false, true, true, config.MenuModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveMenuMode(tt.configured, tt.plain, tt.jsonOut, tt.terminal)
			if got != tt.want {
				t.Errorf("resolveMenuMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeedPlaylist(t *testing.T) {
	p := playlist.New(playlist.WithCapacity(2))

	result := seedPlaylist(p, []string{"Heroes", "   ", "Low", "Lodger"})
	if result.Data != 2 {
		t.Errorf("added = %d, want 2", result.Data)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("errors = %v, want 2", result.Errors)
	}
	if !errors.Is(result.Errors[0], playlist.ErrEmptyTitle) {
		t.Errorf("errors[0] = %v, want ErrEmptyTitle", result.Errors[0])
	}
	if !errors.Is(result.Errors[1], playlist.ErrAllocation) {
		t.Errorf("errors[1] = %v, want ErrAllocation", result.Errors[1])
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestSetRawValue(t *testing.T) {
	tests := []struct {
		key, value string
		want       interface{}
		wantErr    bool
	}{
		{"playlist.max_songs", "50", int64(50), false},
		{"playlist.max_title_length", "40", int64(40), false},
		{"playlist.max_songs", "lots", nil, true},
		{"menu.mode", "plain", "plain", false},
		{"log.file", "/tmp/spin.log", "/tmp/spin.log", false},
		{"menu", "plain", nil, true},
		{"player.volume", "11", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			raw := map[string]interface{}{}
			err := setRawValue(raw, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("setRawValue() error = nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("setRawValue() error = %v", err)
			}

			parts := strings.SplitN(tt.key, ".", 2)
			section := raw[parts[0]].(map[string]interface{})
			if got := section[parts[1]]; got != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMenuCommandPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[playlist]\nsongs = [\"Low\"]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out, errOut bytes.Buffer
	rootCmd.SetArgs([]string{"menu", "--plain", "-c", path, "-s", "Heroes"})
	rootCmd.SetIn(strings.NewReader("5\n3\n7\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v\nstderr: %s", err, errOut.String())
	}

	got := out.String()
	for _, want := range []string{
		"===== MUSIC PLAYLIST =====",
		"Now playing: Heroes",
		"   Low\n-> Heroes  [CURRENT]\n",
		"Exiting. Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintSongs(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	if err := printSongs(listCmd, nil); err != nil {
		t.Fatalf("printSongs() error = %v", err)
	}
	if out.String() != "Playlist is empty!\n" {
		t.Errorf("empty output = %q", out.String())
	}

	out.Reset()
	songs := []playlist.Entry{{Title: "Low", Current: true}, {Title: "Heroes"}}
	if err := printSongs(listCmd, songs); err != nil {
		t.Fatalf("printSongs() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q, want header plus 2 rows", lines)
	}
	if !strings.Contains(lines[1], "▶") || !strings.Contains(lines[1], "Low") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if strings.Contains(lines[2], "▶") {
		t.Errorf("row 2 marked current: %q", lines[2])
	}
}

func TestVersionJSON(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	jsonOut = true
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		jsonOut = false
	})

	versionCmd.Run(versionCmd, nil)

	var info map[string]string
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, out.String())
	}
	if info["version"] != Version || info["go_version"] != runtime.Version() {
		t.Errorf("info = %v", info)
	}
	for _, key := range []string{"commit", "build_date", "os", "arch"} {
		if info[key] == "" {
			t.Errorf("info missing %q: %v", key, info)
		}
	}
}

func TestVersionText(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	if got, want := out.String(), "spin "+Version+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
