package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tessro/spin/internal/playlist"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the startup playlist and exit",
	Long: `Print the playlist built from the config file and --song flags
without opening the menu.

Examples:
  spin list -s "Heroes" -s "Low"
  spin list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	p := newPlaylist(cmd)
	defer p.Teardown()

	return printSongs(cmd, slices.Collect(p.Songs()))
}

func printSongs(cmd *cobra.Command, songs []playlist.Entry) error {
	out := cmd.OutOrStdout()

	if JSONOutput() {
		if songs == nil {
			songs = []playlist.Entry{}
		}
		return json.NewEncoder(out).Encode(songs)
	}

	if len(songs) == 0 {
		_, err := fmt.Fprintln(out, "Playlist is empty!")
		return err
	}

	table := NewTableWriter(out, "", "#", "TITLE")
	for i, s := range songs {
		table.Row(StatusIcon(s.Current), strconv.Itoa(i+1), s.Title)
	}
	table.Flush()
	return nil
}
