package timeline

import (
	"fmt"
)

// EmptyInputError is returned when a derivation is attempted over zero rows.
type EmptyInputError struct {
	RowCount int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("timeline: no injects supplied (rows=%d)", e.RowCount)
}

// UnsortedInputError reports a violated sort precondition. The deriver never
// re-sorts: an out-of-order row means the loader is defective.
type UnsortedInputError struct {
	Index    int   // position of the offending row
	Previous int64 // timestamp at Index-1
	Current  int64 // timestamp at Index
}

func (e *UnsortedInputError) Error() string {
	return fmt.Sprintf("timeline: injects not sorted by time at row %d (%d < %d)",
		e.Index, e.Current, e.Previous)
}

// UnknownSerialError is returned when no inject matches the requested serial.
type UnknownSerialError struct {
	Serial string
}

func (e *UnknownSerialError) Error() string {
	return fmt.Sprintf("timeline: unknown serial %q", e.Serial)
}
