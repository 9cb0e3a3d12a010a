// Package ui handles console interaction for create-next-app.
//
// A Console wraps an input reader and an output writer so prompts can be
// driven from tests:
//
//	c := ui.NewConsole(strings.NewReader("\n"), &buf)
//	ok, err := c.Confirm("Confirm repository path [/tmp/app]")
//
// Highlighted values use fatih/color; colors are dropped automatically when
// the output is not a terminal.
package ui
