package ui

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// IsInteractive reports whether stdout is attached to a terminal.
// Non-interactive runs (pipes, CI) should get plain output.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current terminal width, or a conservative
// default when stdout isn't a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
