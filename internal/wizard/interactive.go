package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize/english"
	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
	"golang.org/x/term"
)

// Prompter asks for menu choices and titles with interactive forms.
type Prompter struct {
	playlist *playlist.Playlist
	theme    *huh.Theme
}

// NewPrompter creates a form-based prompter. The playlist is read to offer
// its songs when removing.
func NewPrompter(p *playlist.Playlist) *Prompter {
	return &Prompter{
		playlist: p,
		theme:    huh.ThemeCatppuccin(),
	}
}

// IsTerminal returns true if stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Choose shows the command menu. Aborting the form ends input.
func (w *Prompter) Choose(ctx context.Context) (command.Command, error) {
	choice := command.PlayCurrent
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[command.Command]().
				Title("Music Playlist").
				Description(w.summary()).
				Options(menuOptions()...).
				Value(&choice),
		),
	).WithTheme(w.theme)

	if err := run(ctx, form); err != nil {
		return 0, err
	}
	return choice, nil
}

// Title asks for the song to add, or offers the playlist's songs to remove.
func (w *Prompter) Title(ctx context.Context, c command.Command) (string, error) {
	var title string

	var field huh.Field
	if choices := removeChoices(w.playlist); c == command.Remove && len(choices) > 0 {
		field = huh.NewSelect[string]().
			Title("Remove which song?").
			Options(huh.NewOptions(choices...)...).
			Value(&title)
	} else {
		field = huh.NewInput().
			Title("Song title").
			CharLimit(w.playlist.MaxTitleLength()).
			Value(&title)
	}

	if err := run(ctx, huh.NewForm(huh.NewGroup(field)).WithTheme(w.theme)); err != nil {
		return "", err
	}
	return title, nil
}

func (w *Prompter) summary() string {
	n := w.playlist.Len()
	if n == 0 {
		return "Playlist is empty"
	}
	current, _ := w.playlist.Current()
	return fmt.Sprintf("%s, now playing %s", english.Plural(n, "song", ""), current)
}

func run(ctx context.Context, form *huh.Form) error {
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}

func menuOptions() []huh.Option[command.Command] {
	opts := make([]huh.Option[command.Command], 0, len(command.All))
	for _, c := range command.All {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", int(c), c.Label()), c))
	}
	return opts
}

// removeChoices lists distinct titles in playlist order. Remove matches the
// first song with a title, so one option per title is enough.
func removeChoices(p *playlist.Playlist) []string {
	seen := make(map[string]bool)
	var titles []string
	for e := range p.Songs() {
		if seen[e.Title] {
			continue
		}
		seen[e.Title] = true
		titles = append(titles, e.Title)
	}
	return titles
}
