package viewer

import (
	"context"
	"fmt"
	"os"

	"github.com/mselkit/ganttline/internal/data/watcher"
	"github.com/mselkit/ganttline/internal/presentation/display"
	"github.com/mselkit/ganttline/internal/presentation/formatter"
	"github.com/mselkit/ganttline/internal/presentation/interaction"
	"github.com/mselkit/ganttline/internal/util"
)

// RunInteractive drives the keyboard-navigated terminal view. Each event is
// handled to completion before the next is read, so the selection machine
// only ever sees serialized transitions.
func (v *Viewer) RunInteractive(ctx context.Context) error {
	if err := v.Load(); err != nil {
		return err
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keyboard.Close()

	var fileEvents <-chan struct{}
	if !v.config.NoFollow {
		fw, err := watcher.NewFileWatcher(v.config.CSVPath)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", v.config.CSVPath, err)
		}
		defer fw.Close()

		reloads := make(chan struct{}, 1)
		go func() {
			for range fw.Events() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			}
		}()
		fileEvents = reloads
	}

	term := display.NewTerminalDisplay()
	term.EnterAlternateScreen()
	defer term.ExitAlternateScreen()

	if err := v.render(term); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fileEvents:
			if err := v.Load(); err != nil {
				util.LogErrorf("Reload failed: %v", err)
				continue
			}
			if err := v.render(term); err != nil {
				return err
			}

		case event := <-keyboard.Events():
			quit, err := v.handleKey(event)
			if err != nil {
				util.LogErrorf("Interaction error: %v", err)
			}
			if quit {
				return nil
			}
			if err := v.render(term); err != nil {
				return err
			}
		}
	}
}

// handleKey maps one key event onto a selection transition. Returns true to
// quit.
func (v *Viewer) handleKey(event interaction.KeyEvent) (bool, error) {
	switch event.Type {
	case interaction.KeyArrowRight:
		v.state = v.state.StepNext()
		return false, nil
	case interaction.KeyArrowLeft:
		v.state = v.state.StepPrevious()
		return false, nil
	case interaction.KeyEscape:
		v.state = v.state.SelectOverview()
		return false, nil
	}

	switch event.Key {
	case 'q', 3: // q or Ctrl+C
		return true, nil
	case 'n':
		v.state = v.state.StepNext()
	case 'p':
		v.state = v.state.StepPrevious()
	case 'o':
		v.state = v.state.SelectOverview()
	case 'l':
		v.state = v.state.ToggleField()
	case 'e':
		if idx, ok := v.state.Focused(); ok {
			next, err := v.state.ToggleExpand(idx)
			if err != nil {
				return false, err
			}
			v.state = next
		}
	case 'r':
		if err := v.Load(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// render recomputes the visible timeline from scratch and redraws it.
func (v *Viewer) render(term *display.TerminalDisplay) error {
	term.Clear()

	chart := formatter.NewChartFormatter(os.Stdout)

	fmt.Println(util.FormatHeaderTitle("ganttline - " + v.config.CSVPath))
	fmt.Println(v.statusLine())
	fmt.Println(util.FormatSectionSeparator(0))

	idx, focused := v.state.Focused()

	// The expand-in-place variant keeps the overview on screen; plain focus
	// navigates to the detail view alone.
	if !focused || v.state.Expanded() {
		if err := chart.Format(v.OverviewTimeline()); err != nil {
			return err
		}
	}

	if focused {
		tl, err := v.DetailTimeline(idx)
		if err != nil {
			// Stale selection after a reload shrank the serial list.
			v.state = v.state.SelectOverview()
			return chart.Format(v.OverviewTimeline())
		}
		fmt.Println()
		if err := chart.Format(tl); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(util.ColorDim + "n/→ next  p/← prev  o overview  e expand  l persona/channel  r reload  q quit" + util.ColorReset)
	return nil
}

func (v *Viewer) statusLine() string {
	field := v.state.ActiveField().String()
	if idx, ok := v.state.Focused(); ok {
		mode := "focused"
		if v.state.Expanded() {
			mode = "expanded"
		}
		return fmt.Sprintf("serial %d/%d (%s, %s)  label: %s",
			idx+1, v.state.SerialCount(), v.serials[idx], mode, field)
	}
	return fmt.Sprintf("overview  %d serials  label: %s", v.state.SerialCount(), field)
}
