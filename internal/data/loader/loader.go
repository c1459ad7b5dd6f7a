package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mselkit/ganttline/internal/core/model"
	"github.com/mselkit/ganttline/internal/util"
)

// timeLayouts are tried in order when parsing the Time column. Rows whose
// value matches none of them are skipped, not fatal.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
	"2006-01-02",
}

// Load reads an MSEL CSV file and returns its injects sorted ascending by
// time, ties keeping input order.
func Load(path string) ([]model.Inject, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return LoadReader(file, path)
}

// LoadReader parses CSV content from r; name is used in diagnostics only.
func LoadReader(r io.Reader, name string) ([]model.Inject, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var injects []model.Inject
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s line %d: %w", name, line+1, err)
		}
		line++

		get := func(col string) string {
			idx := columns[col]
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		ts, ok := parseTime(get(model.ColumnTime))
		if !ok {
			util.LogDebugf("Skip row with unparsable time %s:%d - %q", name, line, get(model.ColumnTime))
			continue
		}

		injects = append(injects, model.Inject{
			Serial:    get(model.ColumnSerial),
			Time:      ts,
			Timestamp: ts.Unix(),
			Subject:   get(model.ColumnSubject),
			Message:   get(model.ColumnMessage),
			ImageURL:  get(model.ColumnImageURL),
			Persona:   get(model.ColumnFrom),
			Channel:   get(model.ColumnMethod),
		})
	}

	if len(injects) == 0 {
		return nil, fmt.Errorf("%s: no rows with a valid time in the %q column", name, model.ColumnTime)
	}

	// Stable sort keeps input order for equal timestamps.
	sort.SliceStable(injects, func(i, j int) bool {
		return injects[i].Timestamp < injects[j].Timestamp
	})
	for i := range injects {
		injects[i].Index = i
	}

	util.LogDebugf("Loaded %d injects from %s", len(injects), name)
	return injects, nil
}

// mapColumns validates the required columns and returns name -> index.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range model.RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column: %s", required)
		}
	}
	return columns, nil
}

func parseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
