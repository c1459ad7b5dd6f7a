package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

type Sizer struct{}

// displayWidth calculates the actual display width of a string containing
// wide runes and emojis.
func (s Sizer) displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a specific display width.
func (s Sizer) PadString(text string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(text)
	if actualWidth >= width {
		return text
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return text + padding
	}
	return padding + text
}

// MaxColumnWidth returns the widest display width among values.
func (s Sizer) MaxColumnWidth(values []string) int {
	max := 0
	for _, v := range values {
		if w := s.displayWidth(v); w > max {
			max = w
		}
	}
	return max
}

// GetMaxWidth returns the usable terminal width with a fallback when stdout
// is not a terminal.
func (s Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 40 {
		return 100
	}
	if termWidth > 160 {
		return 160
	}
	return termWidth
}
