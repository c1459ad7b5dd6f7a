package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mselkit/ganttline/internal/presentation/layout"
	"github.com/mselkit/ganttline/internal/util"
)

const (
	maxLabelWidth = 24
	minBarCells   = 1
)

// ChartFormatter renders a timeline as horizontal terminal Gantt bars, one
// row per interval, scaled to the terminal width. The on-bar text overlays
// the start of the bar, like the chart in the original viewer; rows with an
// image reference get a trailing marker.
type ChartFormatter struct {
	writer io.Writer
	sizer  layout.Sizer
	width  int // 0 means ask the terminal
	color  bool
}

func NewChartFormatter(w io.Writer) *ChartFormatter {
	return &ChartFormatter{writer: w, color: true}
}

// SetWidth pins the render width; used by tests and the interactive viewer.
func (f *ChartFormatter) SetWidth(width int) {
	f.width = width
}

// SetColor toggles ANSI color output.
func (f *ChartFormatter) SetColor(enabled bool) {
	f.color = enabled
}

func (f *ChartFormatter) Format(tl Timeline) error {
	if len(tl.Rows) == 0 {
		_, err := fmt.Fprintln(f.writer, "(no intervals)")
		return err
	}

	width := f.width
	if width == 0 {
		width = f.sizer.GetMaxWidth()
	}

	labelWidth := f.sizer.MaxColumnWidth(f.labels(tl.Rows))
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}
	chartWidth := width - labelWidth - 3
	if chartWidth < 10 {
		chartWidth = 10
	}

	minStart, maxEnd := timeBounds(tl.Rows)
	span := maxEnd - minStart
	if span <= 0 {
		span = 1
	}

	if tl.Title != "" {
		if _, err := fmt.Fprintln(f.writer, util.FormatHeaderTitle(tl.Title)); err != nil {
			return err
		}
	}

	barColor := util.ColorCyan
	if hasDetail(tl.Rows) {
		barColor = util.ColorOrange
	}

	for _, row := range tl.Rows {
		startCell := int(int64(chartWidth) * (row.StartUnix - minStart) / span)
		endCell := int(int64(chartWidth) * (row.EndUnix - minStart) / span)
		barLen := endCell - startCell
		if barLen < minBarCells {
			barLen = minBarCells
		}
		if startCell+barLen > chartWidth {
			startCell = chartWidth - barLen
		}

		bar := f.renderBar(row.OnBar, barLen)
		if f.color {
			bar = barColor + bar + util.ColorReset
		}

		line := f.sizer.PadString(util.FitDisplay(row.Label, labelWidth), labelWidth, true) +
			" │" + strings.Repeat(" ", startCell) + bar
		if row.HasImage {
			line += " [img]"
		}
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}

	axis := f.sizer.PadString("", labelWidth, true) + " └" + strings.Repeat("─", chartWidth)
	if _, err := fmt.Fprintln(f.writer, axis); err != nil {
		return err
	}
	startText, endText := startLabel(tl.Rows), endLabel(tl.Rows)
	gap := chartWidth - util.GetDisplayWidth(startText) - util.GetDisplayWidth(endText)
	if gap < 1 {
		gap = 1
	}
	legend := f.sizer.PadString("", labelWidth, true) + "  " + startText + strings.Repeat(" ", gap) + endText
	_, err := fmt.Fprintln(f.writer, legend)
	return err
}

// renderBar fills barLen display cells, overlaying the on-bar text at the
// start of the bar.
func (f *ChartFormatter) renderBar(text string, barLen int) string {
	fitted := util.FitDisplay(text, barLen)
	remaining := barLen - util.GetDisplayWidth(fitted)
	return fitted + strings.Repeat("█", remaining)
}

func (f *ChartFormatter) labels(rows []Row) []string {
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Label)
	}
	return labels
}

func timeBounds(rows []Row) (int64, int64) {
	minStart, maxEnd := rows[0].StartUnix, rows[0].EndUnix
	for _, r := range rows[1:] {
		if r.StartUnix < minStart {
			minStart = r.StartUnix
		}
		if r.EndUnix > maxEnd {
			maxEnd = r.EndUnix
		}
	}
	return minStart, maxEnd
}

// startLabel is the formatted timestamp shown at the left edge of the axis.
func startLabel(rows []Row) string {
	earliest := rows[0]
	for _, r := range rows[1:] {
		if r.StartUnix < earliest.StartUnix {
			earliest = r
		}
	}
	return earliest.Start
}

// endLabel is the formatted timestamp shown at the right edge of the axis.
func endLabel(rows []Row) string {
	latest := rows[0]
	for _, r := range rows[1:] {
		if r.EndUnix > latest.EndUnix {
			latest = r
		}
	}
	return latest.End
}
