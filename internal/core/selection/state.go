package selection

import (
	"fmt"

	"github.com/mselkit/ganttline/internal/core/model"
)

// Overview is the sentinel focus index meaning "no serial focused".
const Overview = -1

// IndexOutOfRangeError reports a selection outside the valid serial range.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("selection: serial index %d out of range (count=%d)", e.Index, e.Count)
}

// State is the session's focus and label-field selection. Transitions return
// a new State; callers replace their copy wholesale, so a reader holding a
// snapshot never observes a half-applied transition.
type State struct {
	focused     int // Overview or a valid index into the identity-ordered serial list
	activeField model.LabelField
	expanded    bool
	serialCount int
}

// NewState starts at Overview with the persona field active and nothing
// expanded.
func NewState(serialCount int) State {
	return State{
		focused:     Overview,
		activeField: model.LabelPersona,
		serialCount: serialCount,
	}
}

// Focused returns the focused serial index and whether any serial is focused.
func (s State) Focused() (int, bool) {
	return s.focused, s.focused != Overview
}

// ActiveField returns the label column currently selected for axis labels.
func (s State) ActiveField() model.LabelField {
	return s.activeField
}

// Expanded reports whether the focused serial is shown expanded in place.
func (s State) Expanded() bool {
	return s.expanded
}

// IsExpanded reports whether serial index i is the one expanded.
func (s State) IsExpanded(i int) bool {
	return s.expanded && s.focused == i
}

// SerialCount returns the number of serials this state navigates over.
func (s State) SerialCount() int {
	return s.serialCount
}

// SelectSerial focuses the serial at index i. The Overview sentinel is
// accepted and equivalent to SelectOverview; any other out-of-range index is
// an error.
func (s State) SelectSerial(i int) (State, error) {
	if i == Overview {
		return s.SelectOverview(), nil
	}
	if i < 0 || i >= s.serialCount {
		return s, &IndexOutOfRangeError{Index: i, Count: s.serialCount}
	}
	s.focused = i
	return s, nil
}

// SelectOverview returns to the overall view and collapses any expansion.
func (s State) SelectOverview() State {
	s.focused = Overview
	s.expanded = false
	return s
}

// StepNext advances focus by one serial. Overview acts as logical index -1,
// so the first step focuses serial 0. At the last serial this is a no-op;
// focus never wraps.
func (s State) StepNext() State {
	if s.serialCount == 0 {
		return s
	}
	if s.focused+1 < s.serialCount {
		s.focused++
	}
	return s
}

// StepPrevious moves focus back by one serial. At serial 0, and from
// Overview, this is a no-op.
func (s State) StepPrevious() State {
	if s.focused > 0 {
		s.focused--
	}
	return s
}

// ToggleExpand expands serial i in place, collapsing any previously expanded
// serial; toggling the already-expanded serial collapses back to Overview.
// At most one serial is ever expanded.
func (s State) ToggleExpand(i int) (State, error) {
	if i < 0 || i >= s.serialCount {
		return s, &IndexOutOfRangeError{Index: i, Count: s.serialCount}
	}
	if s.expanded && s.focused == i {
		return s.SelectOverview(), nil
	}
	s.focused = i
	s.expanded = true
	return s, nil
}

// ToggleField flips between the persona and channel label columns. Takes
// effect on the next render; orthogonal to focus.
func (s State) ToggleField() State {
	if s.activeField == model.LabelPersona {
		s.activeField = model.LabelChannel
	} else {
		s.activeField = model.LabelPersona
	}
	return s
}
