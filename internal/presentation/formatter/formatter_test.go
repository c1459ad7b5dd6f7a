package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewTimeline() Timeline {
	return Timeline{
		Title:       "Overall Timeline",
		LabelColumn: "Serial",
		Rows: []Row{
			{Label: "S1", Start: "2024-03-01 09:00", End: "2024-03-01 10:00", StartUnix: 100, EndUnix: 300},
			{Label: "S2", Start: "2024-03-01 10:00", End: "2024-03-01 10:30", StartUnix: 300, EndUnix: 400},
		},
	}
}

func detailTimeline() Timeline {
	return Timeline{
		Title:       "Detailed Timeline for Serial: S1",
		LabelColumn: "Persona",
		Rows: []Row{
			{
				Label: "Control (1)", Start: "2024-03-01 09:00", End: "2024-03-01 09:30",
				StartUnix: 100, EndUnix: 200,
				OnBar: "Kickoff", Tooltip: "Exercise start",
			},
			{
				Label: "Red Cell (2)", Start: "2024-03-01 09:30", End: "2024-03-01 10:00",
				StartUnix: 200, EndUnix: 300,
				OnBar: "Follow-up", Tooltip: "Follow-up message body",
				ImageURL: "https://example.com/a.png", HasImage: true,
			},
		},
	}
}

func TestTableFormatterOverview(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.Format(overviewTimeline()))
	out := buf.String()

	assert.Contains(t, out, "Overall Timeline")
	assert.Contains(t, out, "Serial")
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "S2")
	// Overview rows carry no label data, so no detail columns appear.
	assert.NotContains(t, out, "Message")
	assert.NotContains(t, out, "Image")
}

func TestTableFormatterDetail(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.Format(detailTimeline()))
	out := buf.String()

	assert.Contains(t, out, "Persona")
	assert.Contains(t, out, "Control (1)")
	assert.Contains(t, out, "Kickoff")
	assert.Contains(t, out, "Exercise start")
	assert.Contains(t, out, "Image")
	assert.Contains(t, out, "https://example.com/a.png")
}

func TestTableFormatterAlignment(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.Format(overviewTimeline()))

	var borderWidth int
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if strings.HasPrefix(line, "┌") {
			borderWidth = len([]rune(line))
		}
		if strings.HasPrefix(line, "│") || strings.HasPrefix(line, "├") || strings.HasPrefix(line, "└") {
			assert.Equal(t, borderWidth, len([]rune(line)), "misaligned line: %s", line)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	want := detailTimeline()
	require.NoError(t, f.Format(want))

	var got Timeline
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewCSVFormatter(&buf)

	require.NoError(t, f.Format(detailTimeline()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Persona", "Start", "End", "Label", "Message", "ImageURL"}, records[0])
	assert.Equal(t, "Control (1)", records[1][0])
	assert.Equal(t, "", records[1][5])
	assert.Equal(t, "https://example.com/a.png", records[2][5])
}

func TestChartFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewChartFormatter(&buf)
	f.SetWidth(60)
	f.SetColor(false)

	require.NoError(t, f.Format(detailTimeline()))
	out := buf.String()

	assert.Contains(t, out, "Control (1)")
	assert.Contains(t, out, "Red Cell (2)")
	assert.Contains(t, out, "█")
	// The on-bar text overlays the bar.
	assert.Contains(t, out, "Kickoff")
	// Only the row with an image gets the marker.
	assert.Equal(t, 1, strings.Count(out, "[img]"))
	// Axis legend shows the time bounds.
	assert.Contains(t, out, "2024-03-01 09:00")
	assert.Contains(t, out, "2024-03-01 10:00")
}

func TestChartFormatterZeroWidthInterval(t *testing.T) {
	var buf bytes.Buffer
	f := NewChartFormatter(&buf)
	f.SetWidth(60)
	f.SetColor(false)

	tl := Timeline{
		LabelColumn: "Serial",
		Rows: []Row{
			{Label: "S1", Start: "09:00", End: "09:00", StartUnix: 100, EndUnix: 100},
		},
	}

	require.NoError(t, f.Format(tl))
	// A zero-width interval still renders at least one bar cell.
	assert.Contains(t, buf.String(), "█")
}

func TestChartFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	f := NewChartFormatter(&buf)

	require.NoError(t, f.Format(Timeline{LabelColumn: "Serial"}))
	assert.Contains(t, buf.String(), "(no intervals)")
}
