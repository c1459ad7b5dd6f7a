package display

import (
	"fmt"

	"github.com/mselkit/ganttline/internal/util"
)

// TerminalDisplay manages the alternate screen buffer for the interactive
// viewer so quitting restores the caller's scrollback.
type TerminalDisplay struct {
	inAlternateScreen bool
}

func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{}
}

// EnterAlternateScreen switches to the alternate screen buffer and hides the
// cursor.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Print("\033[?1049h")
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.HideCursor)
	td.inAlternateScreen = true
}

// ExitAlternateScreen restores the normal screen buffer and cursor.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
	fmt.Print(util.ShowCursor)
	fmt.Print("\033[?1049l")
	td.inAlternateScreen = false
}

// Clear wipes the screen between renders.
func (td *TerminalDisplay) Clear() {
	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)
}
