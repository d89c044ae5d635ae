package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	spinerrors "github.com/tessro/spin/internal/errors"
	"github.com/tessro/spin/internal/tui"
	"github.com/tessro/spin/internal/wizard"
)

var tuiTheme string

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard provides a live view with:
  • Now Playing - current song and its position in the circle
  • Playlist - every song, current one highlighted
  • History - songs played this session

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  a            Add song
  d            Remove song
  Enter        Play current
  n            Next song
  p            Previous song
  y            Copy current title
  Tab          Switch panel`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiTheme, "theme", "", "Color theme: auto, dark, or light (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !wizard.IsTerminal() {
		return spinerrors.WithSuggestion(
			fmt.Errorf("dashboard: %w", spinerrors.ErrNotTerminal),
			"Run 'spin ui' from a terminal, or use 'spin menu --plain' for piped input",
		)
	}

	theme := cfg.TUI.Theme
	if tuiTheme != "" {
		theme = tuiTheme
	}

	return tui.Run(newPlaylist(cmd), theme, logger)
}
