package model

import (
	"time"
)

// CSV column names required in the input file.
const (
	ColumnSerial   = "Serial"
	ColumnTime     = "Time"
	ColumnSubject  = "Subject"
	ColumnMessage  = "Message"
	ColumnImageURL = "ImageURL"
	ColumnFrom     = "From"
	ColumnMethod   = "Method"
)

// RequiredColumns lists the columns the loader validates, in header order.
var RequiredColumns = []string{
	ColumnSerial, ColumnTime, ColumnSubject, ColumnMessage,
	ColumnImageURL, ColumnFrom, ColumnMethod,
}

// Inject is a single event row from the loaded MSEL CSV.
// Rows are globally sorted ascending by Time; Index records the position
// in that sorted sequence.
type Inject struct {
	Serial    string    `json:"serial"`
	Time      time.Time `json:"time"`
	Timestamp int64     `json:"timestamp"` // Unix seconds, derived from Time at load
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Persona   string    `json:"persona,omitempty"` // CSV "From"
	Channel   string    `json:"channel,omitempty"` // CSV "Method"
	Index     int       `json:"index"`
}

// SerialInterval is the top-level timeline bar for one serial.
// Start is the serial's first timestamp; End is the next serial's start in
// first-occurrence order, or the serial's own last timestamp for the final
// serial. Intervals are closed-open; zero width is valid.
type SerialInterval struct {
	Serial string `json:"serial"`
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
}

// InjectInterval is one sub-bar within a focused serial. InjectOrder is the
// 0-based position among the serial's injects in global time order.
type InjectInterval struct {
	InjectOrder int   `json:"injectOrder"`
	Start       int64 `json:"start"`
	End         int64 `json:"end"`
}

// LabelField selects which alternate column labels the inject axis.
type LabelField int

const (
	LabelPersona LabelField = iota // CSV "From"
	LabelChannel                   // CSV "Method"
)

func (f LabelField) String() string {
	if f == LabelChannel {
		return "channel"
	}
	return "persona"
}

// LabelBundle holds the resolved display strings for one inject interval.
// HasImage distinguishes a genuinely absent image from an empty string so the
// renderer can suppress the image layer.
type LabelBundle struct {
	OnBar     string `json:"onBar"`
	Tooltip   string `json:"tooltip"`
	AxisLabel string `json:"axisLabel"`
	ImageURL  string `json:"imageUrl,omitempty"`
	HasImage  bool   `json:"hasImage"`
}

// FileEvent represents a file system event observed by the watcher.
type FileEvent struct {
	Path      string
	Operation string
}
