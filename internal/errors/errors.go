package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
)

// Error types for common failure scenarios.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotTerminal    = errors.New("not a terminal")
)

// SpinError wraps an error with a user-friendly suggestion.
type SpinError struct {
	Err        error
	Suggestion string
}

func (e *SpinError) Error() string {
	return e.Err.Error()
}

func (e *SpinError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SpinError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var spinErr *SpinError
	if errors.As(err, &spinErr) && spinErr.Suggestion != "" {
		return spinErr.Suggestion
	}

	switch {
	case errors.Is(err, playlist.ErrAllocation):
		return "Remove a song or raise playlist.max_songs in ~/.spinrc"
	case errors.Is(err, playlist.ErrEmptyTitle):
		return "Enter a title with at least one visible character"
	case errors.Is(err, command.ErrNotANumber), errors.Is(err, command.ErrUnknownCommand):
		return "Enter a number between 1 and 7"
	case errors.Is(err, ErrNotTerminal):
		return "Use --plain to read menu choices line by line"
	case errors.Is(err, ErrConfigNotFound):
		return "Run 'spin config init' to create a configuration file"
	case errors.Is(err, ErrInvalidConfig), strings.Contains(strings.ToLower(err.Error()), "config"):
		return "Run 'spin config show' to inspect the loaded configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
