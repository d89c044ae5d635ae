package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tessro/spin/internal/playlist"
)

func numberedSongs(n, current int) []playlist.Entry {
	songs := make([]playlist.Entry, n)
	for i := range songs {
		songs[i] = playlist.Entry{Title: fmt.Sprintf("Song %02d", i), Current: i == current}
	}
	return songs
}

func TestKeepVisible(t *testing.T) {
	tests := []struct {
		name                          string
		offset, index, visible, total int
		want                          int
	}{
		{"already visible", 0, 2, 5, 10, 0},
		{"below window", 0, 7, 5, 10, 3},
		{"above window", 6, 2, 5, 10, 2},
		{"clamped to end", 9, 9, 5, 10, 5},
		{"short list", 3, 0, 5, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keepVisible(tt.offset, tt.index, tt.visible, tt.total); got != tt.want {
				t.Errorf("keepVisible() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Heroes", 10, "Heroes"},
		{"Bohemian Rhapsody", 10, "Bohemia..."},
		{"Bohemian", 3, "Boh"},
		{"Bohemian", 0, ""},
		{"Café del Mar", 6, "Caf..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPlaylistRender(t *testing.T) {
	view := NewPlaylist()

	empty := view.Render(nil, 40, 10, false)
	if !strings.Contains(empty, "Playlist is empty") {
		t.Errorf("empty render missing placeholder:\n%s", empty)
	}

	songs := []playlist.Entry{{Title: "Low"}, {Title: "Heroes", Current: true}, {Title: "Lodger"}}
	out := view.Render(songs, 40, 10, true)
	for _, want := range []string{"Low", "▶ Heroes", "Lodger"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestNowPlayingRender(t *testing.T) {
	n := NewNowPlaying()

	if out := n.Render("", 0, 0, 50, 12, false); !strings.Contains(out, "No songs to play!") {
		t.Errorf("empty render:\n%s", out)
	}

	out := n.Render("Heroes", 2, 3, 50, 12, true)
	if !strings.Contains(out, "Heroes") || !strings.Contains(out, "2/3") {
		t.Errorf("render missing title or position:\n%s", out)
	}
}

func TestHistoryRender(t *testing.T) {
	h := NewHistory()

	if out := h.Render(nil, 40, 10, false); !strings.Contains(out, "No history yet") {
		t.Errorf("empty render:\n%s", out)
	}

	entries := []HistoryEntry{
		{Title: "Heroes", PlayedAt: time.Now()},
		{Title: "Low", PlayedAt: time.Now().Add(-3 * time.Minute), Skipped: true},
	}
	out := h.Render(entries, 50, 10, false)
	for _, want := range []string{"Heroes", "now", "Low", "3 minutes ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestPlaylistScroll(t *testing.T) {
	view := NewPlaylist()
	songs := numberedSongs(30, 0)

	before := view.Render(songs, 40, 12, true)
	if strings.Contains(before, "Song 10") {
		t.Fatalf("initial render already shows Song 10:\n%s", before)
	}

	for range 5 {
		view.ScrollDown()
	}
	after := view.Render(songs, 40, 12, true)
	if after == before {
		t.Fatal("view did not change after scrolling down")
	}
	if strings.Contains(after, "Song 00") || !strings.Contains(after, "Song 10") {
		t.Errorf("scrolled render should start at Song 05:\n%s", after)
	}
	if view.offset != 5 {
		t.Errorf("offset = %d, want 5", view.offset)
	}

	for range 50 {
		view.ScrollDown()
	}
	view.Render(songs, 40, 12, true)
	if want := 30 - 7; view.offset != want {
		t.Errorf("offset = %d, want clamped to %d", view.offset, want)
	}

	view.ScrollUp()
	view.Render(songs, 40, 12, true)
	if view.offset != 22 {
		t.Errorf("offset after ScrollUp = %d, want 22", view.offset)
	}
}

func TestPlaylistFollowsCursorMove(t *testing.T) {
	view := NewPlaylist()
	view.Render(numberedSongs(30, 0), 40, 12, true)

	out := view.Render(numberedSongs(30, 20), 40, 12, true)
	if !strings.Contains(out, "▶ Song 20") {
		t.Errorf("render should follow the cursor to Song 20:\n%s", out)
	}
}
