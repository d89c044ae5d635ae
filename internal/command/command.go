package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command is one entry of the playlist menu.
type Command int

const (
	Add Command = iota + 1
	Remove
	Display
	PlayCurrent
	PlayNext
	PlayPrevious
	Exit
)

// Errors returned by Parse.
var (
	ErrNotANumber     = errors.New("not a number")
	ErrUnknownCommand = errors.New("unknown command")
)

// All lists the commands in menu order.
var All = []Command{Add, Remove, Display, PlayCurrent, PlayNext, PlayPrevious, Exit}

var names = map[Command]string{
	Add:          "add",
	Remove:       "remove",
	Display:      "display",
	PlayCurrent:  "current",
	PlayNext:     "next",
	PlayPrevious: "previous",
	Exit:         "exit",
}

var labels = map[Command]string{
	Add:          "Add Song",
	Remove:       "Remove Song",
	Display:      "Display Playlist",
	PlayCurrent:  "Play Current",
	PlayNext:     "Play Next",
	PlayPrevious: "Play Previous",
	Exit:         "Exit",
}

var aliases = map[string]Command{
	"list":   Display,
	"ls":     Display,
	"show":   Display,
	"play":   PlayCurrent,
	"prev":   PlayPrevious,
	"rm":     Remove,
	"quit":   Exit,
	"q":      Exit,
	"delete": Remove,
}

// String returns the command's short name.
func (c Command) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Label returns the text shown in the menu.
func (c Command) Label() string {
	return labels[c]
}

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	_, ok := names[c]
	return ok
}

// NeedsTitle reports whether the command takes a song title.
func (c Command) NeedsTitle() bool {
	return c == Add || c == Remove
}

// Parse reads a menu choice: its number (1-7) or its name.
// Non-numeric unknown input yields ErrNotANumber; a number or name outside
// the menu yields ErrUnknownCommand.
func Parse(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		c := Command(n)
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownCommand, n)
		}
		return c, nil
	}

	for c, name := range names {
		if name == s {
			return c, nil
		}
	}
	if c, ok := aliases[s]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
}

// MarshalText encodes the command by name.
func (c Command) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
