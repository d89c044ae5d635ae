package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize/english"
	"github.com/tessro/spin/internal/playlist"
)

// Kind classifies a Result.
type Kind string

const (
	KindAdded         Kind = "added"
	KindRemoved       Kind = "removed"
	KindNotFound      Kind = "not_found"
	KindEmpty         Kind = "empty"
	KindListing       Kind = "listing"
	KindNowPlaying    Kind = "now_playing"
	KindNothingToPlay Kind = "nothing_to_play"
	KindRejected      Kind = "rejected"
	KindFailed        Kind = "failed"
	KindExit          Kind = "exit"
)

// Request is a command plus its title argument.
type Request struct {
	Command Command
	Title   string
}

// Result is the render-neutral outcome of a dispatched request.
type Result struct {
	Command Command          `json:"command"`
	Kind    Kind             `json:"kind"`
	Title   string           `json:"title,omitempty"`
	Songs   []playlist.Entry `json:"songs,omitempty"`
	Count   int              `json:"count"`
	Err     error            `json:"-"`
}

// Dispatch runs a request against the playlist. Every outcome, including a
// failed add, is reported in the Result; none of them is fatal.
func Dispatch(p *playlist.Playlist, req Request) Result {
	res := Result{Command: req.Command}

	switch req.Command {
	case Add:
		title, err := p.Add(req.Title)
		switch {
		case errors.Is(err, playlist.ErrEmptyTitle):
			res.Kind = KindRejected
		case err != nil:
			res.Kind = KindFailed
			res.Title = req.Title
			res.Err = fmt.Errorf("failed to add song: %w", err)
		default:
			res.Kind = KindAdded
			res.Title = title
		}

	case Remove:
		if req.Title == "" {
			res.Kind = KindRejected
			break
		}
		res.Title = req.Title
		switch p.Remove(req.Title) {
		case playlist.Removed:
			res.Kind = KindRemoved
		case playlist.NotFound:
			res.Kind = KindNotFound
		default:
			res.Kind = KindEmpty
		}

	case Display:
		if p.IsEmpty() {
			res.Kind = KindEmpty
			break
		}
		res.Kind = KindListing
		res.Songs = slices.Collect(p.Songs())

	case PlayCurrent:
		res.Title, res.Kind = playing(p.Current())
	case PlayNext:
		res.Title, res.Kind = playing(p.Next())
	case PlayPrevious:
		res.Title, res.Kind = playing(p.Previous())

	case Exit:
		res.Kind = KindExit
		p.Teardown()

	default:
		res.Kind = KindFailed
		res.Err = fmt.Errorf("%w: %d", ErrUnknownCommand, int(req.Command))
	}

	res.Count = p.Len()
	return res
}

func playing(title string, ok bool) (string, Kind) {
	if !ok {
		return "", KindNothingToPlay
	}
	return title, KindNowPlaying
}

// Message returns the one-line text for a result. Listings are rendered by
// the caller; for them Message returns a count summary.
func (r Result) Message() string {
	switch r.Kind {
	case KindAdded:
		return fmt.Sprintf("Added: \"%s\"", r.Title)
	case KindRemoved:
		return fmt.Sprintf("Removed: \"%s\"", r.Title)
	case KindNotFound:
		return fmt.Sprintf("Song not found: \"%s\"", r.Title)
	case KindEmpty:
		return "Playlist is empty!"
	case KindNowPlaying:
		return "Now playing: " + r.Title
	case KindNothingToPlay:
		return "No songs to play!"
	case KindRejected:
		if r.Command == Add {
			return "Empty title; not added."
		}
		return "Empty title."
	case KindListing:
		return english.Plural(len(r.Songs), "song", "") + " in playlist"
	case KindExit:
		return "Exiting. Goodbye!"
	case KindFailed:
		if r.Err != nil {
			return "Error: " + r.Err.Error()
		}
		return "Error"
	}
	return ""
}
