package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, GetDisplayWidth("hello"))
	assert.Equal(t, 4, GetDisplayWidth("日本"))
	assert.Equal(t, 0, GetDisplayWidth(""))
}

func TestPadDisplay(t *testing.T) {
	assert.Equal(t, "ab   ", PadDisplay("ab", 5, true))
	assert.Equal(t, "   ab", PadDisplay("ab", 5, false))
	assert.Equal(t, "abcdef", PadDisplay("abcdef", 5, true))
	// Wide runes count as two columns.
	assert.Equal(t, "日本 ", PadDisplay("日本", 5, true))
}

func TestFitDisplay(t *testing.T) {
	assert.Equal(t, "abc", FitDisplay("abcdef", 3))
	assert.Equal(t, "ab", FitDisplay("ab", 10))
	// A wide rune never splits in half.
	assert.Equal(t, "日", FitDisplay("日本", 3))
}

func TestRenderEntryText(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Level:     "INFO",
		Message:   "loaded",
		Fields:    map[string]interface{}{"rows": 4},
	}

	out, err := renderEntry(entry, FormatText)
	assert.NoError(t, err)
	assert.Contains(t, out, "2024/03/01 09:00:00")
	assert.Contains(t, out, "[INFO] loaded")
	assert.Contains(t, out, "rows=4")
}

func TestRenderEntryJSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Level:     "ERROR",
		Message:   "reload failed",
	}

	out, err := renderEntry(entry, FormatJSON)
	assert.NoError(t, err)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"message":"reload failed"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"unknown", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input), "level %q", tt.input)
	}
}
