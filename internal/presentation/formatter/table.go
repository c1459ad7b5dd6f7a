package formatter

import (
	"fmt"
	"io"

	"github.com/mselkit/ganttline/internal/presentation/layout"
)

type TableFormatter struct {
	writer io.Writer
	sizer  layout.Sizer
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

func (f *TableFormatter) Format(tl Timeline) error {
	headers, extract := f.columns(tl)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = f.sizer.MaxColumnWidth(append([]string{h}, f.columnValues(tl.Rows, extract, i)...))
	}

	if tl.Title != "" {
		if _, err := fmt.Fprintln(f.writer, tl.Title); err != nil {
			return err
		}
	}

	if err := f.printBorder(widths, "┌", "┬", "┐"); err != nil {
		return err
	}
	if err := f.printRow(headers, widths); err != nil {
		return err
	}
	if err := f.printBorder(widths, "├", "┼", "┤"); err != nil {
		return err
	}
	for _, row := range tl.Rows {
		if err := f.printRow(extract(row), widths); err != nil {
			return err
		}
	}
	return f.printBorder(widths, "└", "┴", "┘")
}

// columns picks the header set based on what the rows carry: the overview
// needs only label and boundaries, the detail view adds text and image info.
func (f *TableFormatter) columns(tl Timeline) ([]string, func(Row) []string) {
	headers := []string{tl.LabelColumn, "Start", "End"}
	detail := hasDetail(tl.Rows)
	images := hasImages(tl.Rows)

	if detail {
		headers = append(headers, "Label", "Message")
	}
	if images {
		headers = append(headers, "Image")
	}

	extract := func(r Row) []string {
		cells := []string{r.Label, r.Start, r.End}
		if detail {
			cells = append(cells, r.OnBar, r.Tooltip)
		}
		if images {
			image := ""
			if r.HasImage {
				image = r.ImageURL
			}
			cells = append(cells, image)
		}
		return cells
	}
	return headers, extract
}

func (f *TableFormatter) columnValues(rows []Row, extract func(Row) []string, col int) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, extract(r)[col])
	}
	return values
}

func (f *TableFormatter) printBorder(widths []int, left, mid, right string) error {
	line := left
	for i, w := range widths {
		for j := 0; j < w+2; j++ {
			line += "─"
		}
		if i < len(widths)-1 {
			line += mid
		}
	}
	line += right
	_, err := fmt.Fprintln(f.writer, line)
	return err
}

func (f *TableFormatter) printRow(cells []string, widths []int) error {
	line := "│"
	for i, cell := range cells {
		line += " " + f.sizer.PadString(cell, widths[i], true) + " │"
	}
	_, err := fmt.Fprintln(f.writer, line)
	return err
}
