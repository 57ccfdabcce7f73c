//go:build !noexcel

package report

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// sheetName is the worksheet the report is written to.
const sheetName = "Empty Pages"

// ExcelEnabled reports whether the XLSX writer was compiled in.
func ExcelEnabled() bool {
	return true
}

// XLSXWriter writes records as a styled spreadsheet.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter returns a writer producing an XLSX report at path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Path returns the file the writer will produce.
func (w *XLSXWriter) Path() string {
	return w.path
}

// Format returns FormatXLSX.
func (w *XLSXWriter) Format() Format {
	return FormatXLSX
}

// Write writes all records to a single worksheet with a bold header row on a
// filled background and fixed column widths.
func (w *XLSXWriter) Write(records []Record) error {
	err := writeAtomic(w.path, func(f *os.File) error {
		wb, err := w.build(records)
		if err != nil {
			return err
		}
		defer wb.Close()

		_, err = wb.WriteTo(f)
		return err
	})
	if err != nil {
		return fmt.Errorf("writing XLSX report: %w", err)
	}
	return nil
}

// build assembles the workbook in memory.
func (w *XLSXWriter) build(records []Record) (*excelize.File, error) {
	wb := excelize.NewFile()
	if err := wb.SetSheetName("Sheet1", sheetName); err != nil {
		wb.Close()
		return nil, err
	}

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			wb.Close()
			return nil, err
		}
		if err := wb.SetCellValue(sheetName, cell, name); err != nil {
			wb.Close()
			return nil, err
		}
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		wb.Close()
		return nil, err
	}
	if err := wb.SetCellStyle(sheetName, "A1", "C1", headerStyle); err != nil {
		wb.Close()
		return nil, err
	}

	for i, r := range records {
		row := i + 2 // below the header
		values := []string{r.Collection, r.ImageFilename, r.XMLFilename}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				wb.Close()
				return nil, err
			}
			if err := wb.SetCellValue(sheetName, cell, v); err != nil {
				wb.Close()
				return nil, err
			}
		}
	}

	if err := wb.SetColWidth(sheetName, "A", "A", 25); err != nil {
		wb.Close()
		return nil, err
	}
	if err := wb.SetColWidth(sheetName, "B", "C", 50); err != nil {
		wb.Close()
		return nil, err
	}

	return wb, nil
}
