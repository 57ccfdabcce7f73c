package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter writes records as comma-separated values, UTF-8 encoded.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer producing a CSV report at path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the file the writer will produce.
func (w *CSVWriter) Path() string {
	return w.path
}

// Format returns FormatCSV.
func (w *CSVWriter) Format() Format {
	return FormatCSV
}

// Write writes all records with a header row first.
func (w *CSVWriter) Write(records []Record) error {
	err := writeAtomic(w.path, func(f *os.File) error {
		cw := csv.NewWriter(f)

		if err := cw.Write(header); err != nil {
			return err
		}
		for _, r := range records {
			if err := cw.Write([]string{r.Collection, r.ImageFilename, r.XMLFilename}); err != nil {
				return err
			}
		}

		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return fmt.Errorf("writing CSV report: %w", err)
	}
	return nil
}
