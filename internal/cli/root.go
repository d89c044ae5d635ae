package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tessro/spin/internal/config"
	spinerrors "github.com/tessro/spin/internal/errors"
	"github.com/tessro/spin/internal/logging"
	"github.com/tessro/spin/internal/playlist"
)

var (
	cfgFile   string
	jsonOut   bool
	verbose   bool
	seedSongs []string

	cfg       *config.Config
	logger    = zerolog.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "spin",
	Short: "Manage a circular music playlist",
	Long: `Spin keeps a playlist of song titles in a circle: next after the last
song wraps to the first, previous before the first wraps to the last.

Run without a subcommand to open the numbered menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spinrc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringArrayVarP(&seedSongs, "song", "s", nil, "song to add at startup (repeatable)")
	addMenuFlags(rootCmd)
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return spinerrors.WithSuggestion(
			fmt.Errorf("%w: %w", spinerrors.ErrInvalidConfig, err),
			"Fix the values above in your config file or SPIN_* environment variables",
		)
	}

	logger, logCloser, err = logging.New(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logger.Debug().Str("level", cfg.Log.Level).Msg("config loaded")

	return nil
}

// newPlaylist builds the session playlist from config and adds the startup
// songs. Songs that cannot be added are reported on stderr.
func newPlaylist(cmd *cobra.Command) *playlist.Playlist {
	p := playlist.New(
		playlist.WithMaxTitleLength(cfg.Playlist.MaxTitleLength),
		playlist.WithCapacity(cfg.Playlist.MaxSongs),
		playlist.WithLogger(logger),
	)

	titles := append(append([]string{}, cfg.Playlist.Songs...), seedSongs...)
	result := seedPlaylist(p, titles)
	if result.HasErrors() {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), result.ErrorSummary())
	}
	logger.Debug().Int("added", result.Data).Int("failed", len(result.Errors)).Msg("playlist seeded")

	return p
}

func seedPlaylist(p *playlist.Playlist, titles []string) *spinerrors.PartialResult[int] {
	result := &spinerrors.PartialResult[int]{}
	for _, title := range titles {
		if _, err := p.Add(title); err != nil {
			result.AddError(fmt.Errorf("failed to add %q: %w", title, err))
			continue
		}
		result.Data++
	}
	return result
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, spinerrors.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
