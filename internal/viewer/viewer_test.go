package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mselkit/ganttline/internal/core/model"
	"github.com/mselkit/ganttline/internal/core/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Serial,Time,Subject,Message,ImageURL,From,Method
S1,2024-03-01 09:00:00,Kickoff,Exercise start,,Control,Email
S1,2024-03-01 09:30:00,,A very long message exceeding thirty characters for sure,https://example.com/a.png,Red Cell,Phone
S2,2024-03-01 10:00:00,Escalation,Second serial begins,,Control,Radio
S2,2024-03-01 10:30:00,Wrap-up,Exercise end,,Control,Email
`

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestViewer(t *testing.T, config *Config) *Viewer {
	t.Helper()
	if config.CSVPath == "" {
		config.CSVPath = writeTestCSV(t, testCSV)
	}
	v := New(config)
	require.NoError(t, v.Load())
	return v
}

func TestLoad(t *testing.T) {
	v := newTestViewer(t, &Config{})

	assert.Equal(t, []string{"S1", "S2"}, v.Serials())
	require.Len(t, v.SerialIntervals(), 2)

	// S1 ends where S2 starts; S2 ends at its own last inject.
	assert.Equal(t, v.SerialIntervals()[1].Start, v.SerialIntervals()[0].End)

	_, focused := v.State().Focused()
	assert.False(t, focused)
}

func TestOverviewTimeline(t *testing.T) {
	v := newTestViewer(t, &Config{})

	tl := v.OverviewTimeline()

	assert.Equal(t, "Serial", tl.LabelColumn)
	require.Len(t, tl.Rows, 2)
	assert.Equal(t, "S1", tl.Rows[0].Label)
	assert.Equal(t, "2024-03-01 09:00", tl.Rows[0].Start)
	assert.Equal(t, "2024-03-01 10:00", tl.Rows[0].End)
	assert.Equal(t, "S2", tl.Rows[1].Label)
	assert.Equal(t, "2024-03-01 10:30", tl.Rows[1].End)
}

func TestOverviewTimelineSortByStart(t *testing.T) {
	// Over time-sorted input, first-occurrence order already ascends by
	// start, so the chronological accessor must agree with it (ties keep
	// identity order via the stable sort).
	path := writeTestCSV(t, testCSV)

	identity := newTestViewer(t, &Config{CSVPath: path})
	chronological := newTestViewer(t, &Config{CSVPath: path, SortByStart: true})

	assert.Equal(t, identity.OverviewTimeline().Rows, chronological.OverviewTimeline().Rows)
}

func TestDetailTimelineCascade(t *testing.T) {
	v := newTestViewer(t, &Config{Disambiguate: true})

	tl, err := v.DetailTimeline(0)
	require.NoError(t, err)

	assert.Equal(t, "Persona", tl.LabelColumn)
	require.Len(t, tl.Rows, 2)

	// First inject ends at the second's start.
	assert.Equal(t, tl.Rows[1].Start, tl.Rows[0].End)
	// Last inject cascades to the serial's end, which is S2's start.
	assert.Equal(t, "2024-03-01 10:00", tl.Rows[1].End)

	assert.Equal(t, "Control (1)", tl.Rows[0].Label)
	assert.Equal(t, "Red Cell (2)", tl.Rows[1].Label)

	// Subject fallback with 30-rune truncation.
	assert.Equal(t, "Kickoff", tl.Rows[0].OnBar)
	assert.Equal(t, "A very long message exceeding ...", tl.Rows[1].OnBar)

	assert.False(t, tl.Rows[0].HasImage)
	assert.True(t, tl.Rows[1].HasImage)
}

func TestDetailTimelineChannelField(t *testing.T) {
	v := newTestViewer(t, &Config{LabelField: model.LabelChannel, Disambiguate: true})

	tl, err := v.DetailTimeline(1)
	require.NoError(t, err)

	assert.Equal(t, "Channel", tl.LabelColumn)
	assert.Equal(t, "Radio (1)", tl.Rows[0].Label)
	assert.Equal(t, "Email (2)", tl.Rows[1].Label)
}

func TestDetailTimelineWithoutDisambiguation(t *testing.T) {
	v := newTestViewer(t, &Config{})

	tl, err := v.DetailTimeline(0)
	require.NoError(t, err)
	assert.Equal(t, "Control", tl.Rows[0].Label)
}

func TestDetailTimelineOutOfRange(t *testing.T) {
	v := newTestViewer(t, &Config{})

	_, err := v.DetailTimeline(5)
	require.Error(t, err)
}

func TestRunUnknownSerial(t *testing.T) {
	config := &Config{CSVPath: writeTestCSV(t, testCSV), Serial: "missing", OutputFormat: "json"}

	err := New(config).Run()
	require.Error(t, err)

	var unknownErr *timeline.UnknownSerialError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "missing", unknownErr.Serial)
}

func TestNewFormatterUnknownFormat(t *testing.T) {
	v := newTestViewer(t, &Config{OutputFormat: "yaml"})

	_, err := v.newFormatter(os.Stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestLoadKeepsLabelFieldAcrossReload(t *testing.T) {
	v := newTestViewer(t, &Config{})

	v.Apply(v.State().ToggleField())
	require.NoError(t, v.Load())

	assert.Equal(t, model.LabelChannel, v.State().ActiveField())
}

func TestStateTransitionsThroughViewer(t *testing.T) {
	v := newTestViewer(t, &Config{})

	v.Apply(v.State().StepNext())
	idx, focused := v.State().Focused()
	require.True(t, focused)
	assert.Equal(t, 0, idx)

	tl, err := v.DetailTimeline(idx)
	require.NoError(t, err)
	assert.Equal(t, "Detailed Timeline for Serial: S1", tl.Title)
}
