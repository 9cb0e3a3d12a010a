package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// ErrNoInput is returned when the input ends before an answer is read.
var ErrNoInput = errors.New("no input available")

// Prompter asks questions and prints status lines.
type Prompter interface {
	Ask(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	Println(a ...interface{})
	Printf(format string, args ...interface{})
}

// Console implements Prompter over a reader and writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading answers from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt and returns the next input line without its line
// terminator. Other whitespace is kept as typed. A final line without a newline is still returned;
// ErrNoInput means nothing was left to read.
func (c *Console) Ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		_, _ = fmt.Fprintln(c.out)
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return trimEOL(line), nil
}

// Confirm asks a yes/no question where Enter means yes. Only an empty answer
// or "y" (any case) confirms; " y" does not.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.Ask(prompt)
	if err != nil {
		return false, err
	}
	return lo.Contains([]string{"", "y"}, strings.ToLower(answer)), nil
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
