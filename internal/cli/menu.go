package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tessro/spin/internal/config"
	"github.com/tessro/spin/internal/console"
	spinerrors "github.com/tessro/spin/internal/errors"
	"github.com/tessro/spin/internal/playlist"
	"github.com/tessro/spin/internal/wizard"
)

var menuPlain bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the numbered playlist menu",
	Long: `Open the playlist menu.

Menu:
  1  Add Song
  2  Remove Song
  3  Display Playlist
  4  Play Current
  5  Play Next
  6  Play Previous
  7  Exit

Choices may also be typed by name (add, remove, list, next, prev, exit).
On a terminal the menu uses interactive pickers unless --plain is set or
menu.mode is "plain". End of input exits like choice 7.

Examples:
  spin menu -s "Heroes" -s "Low"
  printf '1\nHeroes\n3\n7\n' | spin menu --plain`,
	RunE: runMenu,
}

func init() {
	addMenuFlags(menuCmd)
	rootCmd.AddCommand(menuCmd)
}

func addMenuFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&menuPlain, "plain", false, "Read menu choices line by line")
}

func runMenu(cmd *cobra.Command, args []string) error {
	p := newPlaylist(cmd)

	prompter, err := menuPrompter(cmd, p)
	if err != nil {
		return err
	}

	var formatter console.Formatter = console.TextFormatter{}
	if JSONOutput() {
		formatter = console.JSONFormatter{}
	}

	loop := console.NewLoop(p, prompter, formatter, cmd.OutOrStdout(), logger)
	return loop.Run(cmd.Context())
}

func menuPrompter(cmd *cobra.Command, p *playlist.Playlist) (console.Prompter, error) {
	mode := resolveMenuMode(cfg.Menu.Mode, menuPlain, JSONOutput(), wizard.IsTerminal())

	if mode == config.MenuModeInteractive {
		if !wizard.IsTerminal() {
			return nil, fmt.Errorf("interactive menu: %w", spinerrors.ErrNotTerminal)
		}
		return wizard.NewPrompter(p), nil
	}

	// Keep stdout clean for JSON consumers.
	var promptOut io.Writer = cmd.OutOrStdout()
	if JSONOutput() {
		promptOut = cmd.ErrOrStderr()
	}
	return console.NewLinePrompter(cmd.InOrStdin(), promptOut), nil
}

// resolveMenuMode turns the configured mode and flags into plain or
// interactive.
func resolveMenuMode(configured string, plain, jsonOut, terminal bool) string {
	if plain {
		return config.MenuModePlain
	}
	switch configured {
	case config.MenuModePlain, config.MenuModeInteractive:
		return configured
	}
	if terminal && !jsonOut {
		return config.MenuModeInteractive
	}
	return config.MenuModePlain
}
