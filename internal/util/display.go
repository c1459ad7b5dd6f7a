package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorOrange = "\033[38;5;208m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"

	ClearScreen    = "\033[2J" // Clear entire screen
	MoveCursorHome = "\033[H"  // Move cursor to home position
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"
)

// GetDisplayWidth calculates the actual display width of a string, accounting
// for wide runes and emojis.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadDisplay pads a string to a specific display width.
func PadDisplay(s string, width int, leftAlign bool) string {
	actual := runewidth.StringWidth(s)
	if actual >= width {
		return s
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// FitDisplay truncates a string to at most width display columns.
func FitDisplay(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// FormatHeaderTitle formats main header titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return fmt.Sprintf("%s%s%s%s", ColorBold, ColorCyan, title, ColorReset)
}

// FormatSectionSeparator creates a visual separator line
func FormatSectionSeparator(width int) string {
	if width <= 0 {
		width = 74
	}
	return fmt.Sprintf("%s%s%s", ColorDim, strings.Repeat("─", width), ColorReset)
}
