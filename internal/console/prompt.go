package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tessro/spin/internal/command"
)

// Prompter supplies menu choices and song titles to the Loop.
// Implementations return io.EOF when input is exhausted.
type Prompter interface {
	Choose(ctx context.Context) (command.Command, error)
	Title(ctx context.Context, c command.Command) (string, error)
}

// LinePrompter prints a numbered menu and reads one line per prompt.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose prints the menu and parses the next line as a command.
func (p *LinePrompter) Choose(ctx context.Context) (command.Command, error) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, "===== MUSIC PLAYLIST =====")
	for _, c := range command.All {
		_, _ = fmt.Fprintf(p.out, "%d. %s\n", int(c), c.Label())
	}
	_, _ = fmt.Fprint(p.out, "Enter your choice: ")

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	return command.Parse(line)
}

// Title prompts for the title argument of c.
func (p *LinePrompter) Title(ctx context.Context, c command.Command) (string, error) {
	prompt := "Enter song title: "
	if c == command.Remove {
		prompt = "Enter song title to remove: "
	}
	_, _ = fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// readLine returns the next line without its line ending. A final line with
// no newline is still returned; io.EOF comes on the following call.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
