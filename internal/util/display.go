package util

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"

	ClearScreen    = "\033[2J" // Clear entire screen
	MoveCursorHome = "\033[H"  // Move cursor to home position
)

// GetDisplayWidth calculates the actual display width of a string,
// accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// IsTerminal reports whether stdout is attached to a terminal. Color output
// is suppressed when it is not.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
