package timeline

import (
	"sort"

	"github.com/mselkit/ganttline/internal/core/model"
)

// checkSorted enforces the loader's sort precondition. Equal timestamps are
// fine; only a strict decrease is a violation.
func checkSorted(injects []model.Inject) error {
	if len(injects) == 0 {
		return &EmptyInputError{RowCount: 0}
	}
	for i := 1; i < len(injects); i++ {
		if injects[i].Timestamp < injects[i-1].Timestamp {
			return &UnsortedInputError{
				Index:    i,
				Previous: injects[i-1].Timestamp,
				Current:  injects[i].Timestamp,
			}
		}
	}
	return nil
}

// Serials returns the serial keys in first-occurrence order. This is the
// identity order used for selection indices and the default display order.
func Serials(injects []model.Inject) []string {
	seen := make(map[string]bool, len(injects))
	var serials []string
	for _, in := range injects {
		if !seen[in.Serial] {
			seen[in.Serial] = true
			serials = append(serials, in.Serial)
		}
	}
	return serials
}

// DeriveSerialIntervals builds one closed-open interval per serial from the
// globally time-sorted inject list.
//
// A serial's start is its first inject's timestamp. Its end is the start of
// the next serial in first-occurrence order; the final serial ends at its own
// last inject's timestamp. Rows sharing a key are unioned into one serial
// regardless of contiguity, so the running max timestamp per key decides the
// final serial's end.
//
// Output is in first-occurrence order. Chronological display order is a
// separate presentation step; see SortByStart.
func DeriveSerialIntervals(injects []model.Inject) ([]model.SerialInterval, error) {
	if err := checkSorted(injects); err != nil {
		return nil, err
	}

	firstSeen := make(map[string]int64)
	lastSeen := make(map[string]int64)
	var order []string

	for _, in := range injects {
		if _, ok := firstSeen[in.Serial]; !ok {
			firstSeen[in.Serial] = in.Timestamp
			order = append(order, in.Serial)
		}
		lastSeen[in.Serial] = in.Timestamp
	}

	intervals := make([]model.SerialInterval, 0, len(order))
	for i, serial := range order {
		end := lastSeen[serial]
		if i+1 < len(order) {
			end = firstSeen[order[i+1]]
		}
		intervals = append(intervals, model.SerialInterval{
			Serial: serial,
			Start:  firstSeen[serial],
			End:    end,
		})
	}

	return intervals, nil
}

// SortByStart returns a copy of intervals sorted by start time ascending.
// The input slice is left untouched so callers keep the identity order too.
func SortByStart(intervals []model.SerialInterval) []model.SerialInterval {
	sorted := make([]model.SerialInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// DeriveInjectIntervals builds the sub-interval per inject for one serial.
// serialEnd must come from a prior DeriveSerialIntervals pass so the last
// inject's cascading boundary matches the serial-level view exactly.
func DeriveInjectIntervals(injects []model.Inject, serial string, serialEnd int64) ([]model.InjectInterval, error) {
	var group []model.Inject
	for _, in := range injects {
		if in.Serial == serial {
			group = append(group, in)
		}
	}
	if len(group) == 0 {
		return nil, &UnknownSerialError{Serial: serial}
	}

	intervals := make([]model.InjectInterval, 0, len(group))
	for j, in := range group {
		end := serialEnd
		if j+1 < len(group) {
			end = group[j+1].Timestamp
		}
		intervals = append(intervals, model.InjectInterval{
			InjectOrder: j,
			Start:       in.Timestamp,
			End:         end,
		})
	}

	return intervals, nil
}

// InjectsFor returns the serial's injects in global time order, for callers
// that need the rows alongside the intervals (label resolution).
func InjectsFor(injects []model.Inject, serial string) []model.Inject {
	var group []model.Inject
	for _, in := range injects {
		if in.Serial == serial {
			group = append(group, in)
		}
	}
	return group
}
