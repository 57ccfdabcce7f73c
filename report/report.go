// Package report serializes empty-page records to a tabular output file.
//
// Two interchangeable writers exist: a styled XLSX writer and a plain CSV
// writer. Select performs the capability check once and returns the writer
// that fits the requested output path and the compiled-in backends.
package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrExcelNotEnabled is returned when the XLSX writer is used but XLSX
// support was compiled out. Rebuild without the "noexcel" tag to enable it.
var ErrExcelNotEnabled = errors.New("XLSX support not enabled; rebuild without -tags noexcel")

// Header columns, in output order.
var header = []string{"Collection", "Image Filename", "XML Filename"}

// Record is one empty page found during a scan.
type Record struct {
	// Collection is the name of the collection the page belongs to.
	Collection string

	// ImageFilename is the scanned image the page transcribes.
	ImageFilename string

	// XMLFilename is the base name of the PAGE document.
	XMLFilename string
}

// Format defines the available report formats.
type Format int

const (
	// FormatXLSX writes a styled spreadsheet.
	FormatXLSX Format = iota
	// FormatCSV writes comma-separated values, UTF-8 encoded.
	FormatCSV
)

// String returns a human-readable representation of the report format.
func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (f Format) FileExtension() string {
	switch f {
	case FormatXLSX:
		return ".xlsx"
	case FormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// Writer serializes records to a report file.
type Writer interface {
	// Write writes all records, header row first. Writing is all-or-nothing:
	// on error no partial file is left at Path.
	Write(records []Record) error

	// Path returns the file the writer will produce.
	Path() string

	// Format returns the writer's output format.
	Format() Format
}

// Select chooses a writer for the given output path. A ".csv" extension
// selects the CSV writer; otherwise the XLSX writer is selected when XLSX
// support is compiled in, and the CSV writer (with the path re-suffixed to
// ".csv") when it is not.
func Select(path string) Writer {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVWriter(path)
	}
	if !ExcelEnabled() {
		return NewCSVWriter(replaceExt(path, ".csv"))
	}
	return NewXLSXWriter(path)
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// writeAtomic writes the output of write to a temporary file in path's
// directory and renames it into place, so a failed write never leaves a
// partial file at path.
func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
