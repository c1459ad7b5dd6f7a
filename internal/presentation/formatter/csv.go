package formatter

import (
	"encoding/csv"
	"io"
)

type CSVFormatter struct {
	writer io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

func (f *CSVFormatter) Format(tl Timeline) error {
	w := csv.NewWriter(f.writer)
	defer w.Flush()

	headers := []string{tl.LabelColumn, "Start", "End", "Label", "Message", "ImageURL"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range tl.Rows {
		image := ""
		if row.HasImage {
			image = row.ImageURL
		}
		record := []string{row.Label, row.Start, row.End, row.OnBar, row.Tooltip, image}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
