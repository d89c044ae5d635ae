package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
)

func runScript(t *testing.T, p *playlist.Playlist, script string, f Formatter) string {
	t.Helper()

	var out bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader(script), io.Discard)
	loop := NewLoop(p, prompter, f, &out, zerolog.Nop())

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestLoopScenario(t *testing.T) {
	p := playlist.New()
	script := strings.Join([]string{
		"1", "A",
		"1", "B",
		"1", "C",
		"3",
		"5",
		"2", "B",
		"3",
		"2", "X",
		"6",
		"4",
		"7",
	}, "\n") + "\n"

	got := runScript(t, p, script, TextFormatter{})

	want := `Added: "A"
Added: "B"
Added: "C"

--- PLAYLIST ---
-> A  [CURRENT]
   B
   C
----------------
Now playing: B
Removed: "B"

--- PLAYLIST ---
   A
-> C  [CURRENT]
----------------
Song not found: "X"
Now playing: A
Now playing: A
Exiting. Goodbye!
`
	if got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !p.IsEmpty() {
		t.Error("playlist not torn down on exit")
	}
}

func TestLoopInvalidInput(t *testing.T) {
	got := runScript(t, playlist.New(), "abc\n9\n0\n4\n7\n", TextFormatter{})

	want := "Invalid input. Try again.\n" +
		"Invalid choice. Enter a number between 1 and 7.\n" +
		"Invalid choice. Enter a number between 1 and 7.\n" +
		"No songs to play!\n" +
		"Exiting. Goodbye!\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoopEmptyTitles(t *testing.T) {
	got := runScript(t, playlist.New(), "1\n\n1\n   \n2\n\n1\nA\n2\n   \n", TextFormatter{})

	want := "Empty title; not added.\n" +
		"Empty title; not added.\n" +
		"Empty title.\n" +
		"Added: \"A\"\n" +
		"Song not found: \"   \"\n" +
		"Exiting. Goodbye!\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoopEOFExits(t *testing.T) {
	p := playlist.New()
	got := runScript(t, p, "1\nLast Song", TextFormatter{})

	want := "Added: \"Last Song\"\nExiting. Goodbye!\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !p.IsEmpty() {
		t.Error("playlist not torn down at end of input")
	}
}

func TestLoopCRLF(t *testing.T) {
	got := runScript(t, playlist.New(), "1\r\nWindows\r\n4\r\n", TextFormatter{})
	if !strings.Contains(got, "Now playing: Windows\n") {
		t.Errorf("output = %q, want CR stripped from title", got)
	}
}

func TestLoopCancelled(t *testing.T) {
	p := playlist.New()
	p.Add("A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := NewLoop(p, NewLinePrompter(strings.NewReader("4\n"), io.Discard), TextFormatter{}, io.Discard, zerolog.Nop())
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if !p.IsEmpty() {
		t.Error("playlist not torn down on cancel")
	}
}

func TestLinePrompterMenu(t *testing.T) {
	var prompts bytes.Buffer
	prompter := NewLinePrompter(strings.NewReader("5\nHeroes\n"), &prompts)

	c, err := prompter.Choose(context.Background())
	if err != nil || c != command.PlayNext {
		t.Fatalf("Choose() = %v, %v, want %v", c, err, command.PlayNext)
	}
	title, err := prompter.Title(context.Background(), command.Remove)
	if err != nil || title != "Heroes" {
		t.Fatalf("Title() = %q, %v", title, err)
	}

	menu := prompts.String()
	for _, want := range []string{"1. Add Song", "6. Play Previous", "7. Exit", "Enter your choice: ", "Enter song title to remove: "} {
		if !strings.Contains(menu, want) {
			t.Errorf("prompts missing %q", want)
		}
	}

	if _, err := prompter.Choose(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("Choose() at end error = %v, want io.EOF", err)
	}
}

func TestJSONFormatter(t *testing.T) {
	p := playlist.New()
	got := runScript(t, p, "1\nA\n3\nnope\n", JSONFormatter{})

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), got)
	}

	var added map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &added); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if added["kind"] != "added" || added["title"] != "A" || added["message"] != `Added: "A"` {
		t.Errorf("added = %v", added)
	}

	var listing struct {
		Kind  string           `json:"kind"`
		Songs []playlist.Entry `json:"songs"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &listing); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if listing.Kind != "listing" || len(listing.Songs) != 1 || !listing.Songs[0].Current {
		t.Errorf("listing = %+v", listing)
	}

	if !strings.Contains(lines[2], `"kind":"invalid"`) {
		t.Errorf("invalid line = %s", lines[2])
	}
	if !strings.Contains(lines[3], `"kind":"exit"`) {
		t.Errorf("exit line = %s", lines[3])
	}
}

func TestFormatFailedAdd(t *testing.T) {
	p := playlist.New(playlist.WithCapacity(1))
	got := runScript(t, p, "1\nA\n1\nB\n", TextFormatter{})

	if !strings.Contains(got, "Error: failed to add song: no room for another song\n") {
		t.Errorf("output = %q", got)
	}
}
