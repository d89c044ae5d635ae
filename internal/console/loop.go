package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
)

// Loop runs the interactive menu against a playlist until Exit or end of input.
type Loop struct {
	playlist  *playlist.Playlist
	prompter  Prompter
	formatter Formatter
	out       io.Writer
	log       zerolog.Logger
}

// NewLoop creates a menu loop writing results to out.
func NewLoop(p *playlist.Playlist, prompter Prompter, formatter Formatter, out io.Writer, log zerolog.Logger) *Loop {
	return &Loop{
		playlist:  p,
		prompter:  prompter,
		formatter: formatter,
		out:       out,
		log:       log,
	}
}

// Run reads commands until Exit, end of input, or ctx is cancelled. End of
// input is treated as Exit. Playlist outcomes and bad menu input are reported
// and never stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			l.playlist.Teardown()
			return err
		}

		c, err := l.prompter.Choose(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return l.exit()
		case errors.Is(err, command.ErrNotANumber), errors.Is(err, command.ErrUnknownCommand):
			l.log.Debug().Err(err).Msg("invalid menu choice")
			if err := l.formatter.Invalid(l.out, err); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		req := command.Request{Command: c}
		if c.NeedsTitle() {
			req.Title, err = l.prompter.Title(ctx, c)
			if errors.Is(err, io.EOF) {
				return l.exit()
			}
			if err != nil {
				return fmt.Errorf("failed to read title: %w", err)
			}
		}

		res := command.Dispatch(l.playlist, req)
		l.log.Debug().
			Stringer("command", c).
			Str("kind", string(res.Kind)).
			Int("count", res.Count).
			Msg("command dispatched")

		if err := l.formatter.Format(l.out, res); err != nil {
			return err
		}
		if res.Kind == command.KindExit {
			return nil
		}
	}
}

func (l *Loop) exit() error {
	res := command.Dispatch(l.playlist, command.Request{Command: command.Exit})
	return l.formatter.Format(l.out, res)
}
