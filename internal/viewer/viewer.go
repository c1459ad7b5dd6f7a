package viewer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mselkit/ganttline/internal/core/label"
	"github.com/mselkit/ganttline/internal/core/model"
	"github.com/mselkit/ganttline/internal/core/selection"
	"github.com/mselkit/ganttline/internal/core/timeline"
	"github.com/mselkit/ganttline/internal/data/loader"
	"github.com/mselkit/ganttline/internal/presentation/formatter"
	"github.com/mselkit/ganttline/internal/util"
)

const displayTimeLayout = "2006-01-02 15:04"

// Config carries everything the commands layer resolves from flags.
type Config struct {
	CSVPath      string
	OutputFormat string // table, json, csv, chart
	LabelField   model.LabelField
	Serial       string // non-empty: one-shot detail view of this serial
	SortByStart  bool   // chronological display order instead of identity order
	Disambiguate bool   // append " (n)" to detail axis labels
	NoFollow     bool   // interactive mode: skip the file watcher
}

// Viewer owns one loaded inject set and the session's selection state, and
// recomputes the renderable timeline on every interaction.
type Viewer struct {
	config    *Config
	injects   []model.Inject
	serials   []string
	intervals []model.SerialInterval // identity order
	state     selection.State
}

func New(config *Config) *Viewer {
	return &Viewer{config: config}
}

// Load reads the CSV and derives the serial-level pass. Selection is reset
// to Overview but keeps the active label field across reloads.
func (v *Viewer) Load() error {
	injects, err := loader.Load(v.config.CSVPath)
	if err != nil {
		return err
	}

	intervals, err := timeline.DeriveSerialIntervals(injects)
	if err != nil {
		return fmt.Errorf("failed to derive serial timeline: %w", err)
	}

	field := v.config.LabelField
	if v.state.SerialCount() > 0 {
		field = v.state.ActiveField()
	}

	v.injects = injects
	v.serials = timeline.Serials(injects)
	v.intervals = intervals
	v.state = selection.NewState(len(v.serials))
	if field == model.LabelChannel {
		v.state = v.state.ToggleField()
	}

	util.LogInfof("Derived %d serial intervals from %d injects", len(intervals), len(injects))
	return nil
}

// State returns the current selection snapshot.
func (v *Viewer) State() selection.State {
	return v.state
}

// Apply replaces the selection state wholesale.
func (v *Viewer) Apply(s selection.State) {
	v.state = s
}

// Serials returns the serial keys in identity (first-occurrence) order.
func (v *Viewer) Serials() []string {
	return v.serials
}

// SerialIntervals returns the serial-level pass in identity order.
func (v *Viewer) SerialIntervals() []model.SerialInterval {
	return v.intervals
}

// Run executes the one-shot render: the overview, or one serial's detail
// when config.Serial is set.
func (v *Viewer) Run() error {
	if err := v.Load(); err != nil {
		return err
	}

	f, err := v.newFormatter(os.Stdout)
	if err != nil {
		return err
	}

	if v.config.Serial != "" {
		idx := v.serialIndex(v.config.Serial)
		if idx < 0 {
			return &timeline.UnknownSerialError{Serial: v.config.Serial}
		}
		tl, err := v.DetailTimeline(idx)
		if err != nil {
			return err
		}
		return f.Format(tl)
	}

	return f.Format(v.OverviewTimeline())
}

// OverviewTimeline builds the serial-level render request. Identity order by
// default; config.SortByStart opts into chronological order as a separate
// presentation step.
func (v *Viewer) OverviewTimeline() formatter.Timeline {
	intervals := v.intervals
	if v.config.SortByStart {
		intervals = timeline.SortByStart(intervals)
	}

	rows := make([]formatter.Row, 0, len(intervals))
	for _, iv := range intervals {
		rows = append(rows, formatter.Row{
			Label:     iv.Serial,
			Start:     formatTime(iv.Start),
			End:       formatTime(iv.End),
			StartUnix: iv.Start,
			EndUnix:   iv.End,
		})
	}

	return formatter.Timeline{
		Title:       "Overall Timeline",
		LabelColumn: model.ColumnSerial,
		Rows:        rows,
	}
}

// DetailTimeline builds the inject-level render request for the serial at
// identity index idx, cascading the serial's end boundary into its last
// inject.
func (v *Viewer) DetailTimeline(idx int) (formatter.Timeline, error) {
	if idx < 0 || idx >= len(v.serials) {
		return formatter.Timeline{}, &selection.IndexOutOfRangeError{Index: idx, Count: len(v.serials)}
	}

	serial := v.serials[idx]
	serialEnd := v.intervals[idx].End

	intervals, err := timeline.DeriveInjectIntervals(v.injects, serial, serialEnd)
	if err != nil {
		return formatter.Timeline{}, err
	}
	group := timeline.InjectsFor(v.injects, serial)

	field := v.state.ActiveField()
	rows := make([]formatter.Row, 0, len(intervals))
	for _, iv := range intervals {
		bundle := label.ResolveBundle(group[iv.InjectOrder], field, iv.InjectOrder, v.config.Disambiguate)
		rows = append(rows, formatter.Row{
			Label:     bundle.AxisLabel,
			Start:     formatTime(iv.Start),
			End:       formatTime(iv.End),
			StartUnix: iv.Start,
			EndUnix:   iv.End,
			OnBar:     bundle.OnBar,
			Tooltip:   bundle.Tooltip,
			ImageURL:  bundle.ImageURL,
			HasImage:  bundle.HasImage,
		})
	}

	column := "Persona"
	if field == model.LabelChannel {
		column = "Channel"
	}

	return formatter.Timeline{
		Title:       "Detailed Timeline for Serial: " + serial,
		LabelColumn: column,
		Rows:        rows,
	}, nil
}

func (v *Viewer) serialIndex(serial string) int {
	for i, s := range v.serials {
		if s == serial {
			return i
		}
	}
	return -1
}

func (v *Viewer) newFormatter(w io.Writer) (formatter.Formatter, error) {
	switch v.config.OutputFormat {
	case "table", "":
		return formatter.NewTableFormatter(w), nil
	case "json":
		return formatter.NewJSONFormatter(w), nil
	case "csv":
		return formatter.NewCSVFormatter(w), nil
	case "chart":
		return formatter.NewChartFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json, csv, or chart)", v.config.OutputFormat)
	}
}

func formatTime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(displayTimeLayout)
}
