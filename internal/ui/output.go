package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
)

// Println writes a line to the console output.
func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
