package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tessro/spin/internal/command"
)

// Formatter writes dispatch results and rejected menu input.
type Formatter interface {
	Format(w io.Writer, r command.Result) error
	Invalid(w io.Writer, err error) error
}

// TextFormatter writes the classic console messages.
type TextFormatter struct{}

// Format writes a result as text. Listings mark the cursor with an arrow.
func (TextFormatter) Format(w io.Writer, r command.Result) error {
	if r.Kind != command.KindListing {
		_, err := fmt.Fprintln(w, r.Message())
		return err
	}

	var b strings.Builder
	b.WriteString("\n--- PLAYLIST ---\n")
	for _, s := range r.Songs {
		if s.Current {
			fmt.Fprintf(&b, "-> %s  [CURRENT]\n", s.Title)
		} else {
			fmt.Fprintf(&b, "   %s\n", s.Title)
		}
	}
	b.WriteString("----------------\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Invalid writes the message for a menu choice that could not be parsed.
func (TextFormatter) Invalid(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, invalidMessage(err))
	return werr
}

// JSONFormatter writes one JSON object per line.
type JSONFormatter struct{}

type jsonResult struct {
	command.Result
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Format writes a result as a JSON object.
func (JSONFormatter) Format(w io.Writer, r command.Result) error {
	out := jsonResult{Result: r, Message: r.Message()}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.NewEncoder(w).Encode(out)
}

// Invalid writes rejected menu input as a JSON object.
func (JSONFormatter) Invalid(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(map[string]string{
		"kind":    "invalid",
		"message": invalidMessage(err),
		"error":   err.Error(),
	})
}

func invalidMessage(err error) string {
	if errors.Is(err, command.ErrUnknownCommand) {
		return fmt.Sprintf("Invalid choice. Enter a number between 1 and %d.", len(command.All))
	}
	return "Invalid input. Try again."
}
