package wizard

import (
	"slices"
	"testing"

	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
)

func TestMenuOptions(t *testing.T) {
	opts := menuOptions()
	if len(opts) != len(command.All) {
		t.Fatalf("len(menuOptions()) = %d, want %d", len(opts), len(command.All))
	}
	if opts[0].Key != "1. Add Song" || opts[0].Value != command.Add {
		t.Errorf("first option = %q/%v", opts[0].Key, opts[0].Value)
	}
	if opts[6].Key != "7. Exit" || opts[6].Value != command.Exit {
		t.Errorf("last option = %q/%v", opts[6].Key, opts[6].Value)
	}
}

func TestRemoveChoices(t *testing.T) {
	p := playlist.New()
	if got := removeChoices(p); len(got) != 0 {
		t.Errorf("removeChoices(empty) = %v", got)
	}

	for _, s := range []string{"A", "B", "A", "C"} {
		p.Add(s)
	}
	if got := removeChoices(p); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("removeChoices() = %v, want [A B C]", got)
	}
}

func TestSummary(t *testing.T) {
	p := playlist.New()
	w := NewPrompter(p)
	if got := w.summary(); got != "Playlist is empty" {
		t.Errorf("summary() = %q", got)
	}

	p.Add("A")
	p.Add("B")
	p.Next()
	if got := w.summary(); got != "2 songs, now playing B" {
		t.Errorf("summary() = %q", got)
	}
}
