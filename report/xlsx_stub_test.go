//go:build noexcel

package report

import (
	"errors"
	"testing"
)

func TestExcelDisabled(t *testing.T) {
	if ExcelEnabled() {
		t.Error("ExcelEnabled() = true with the noexcel tag set")
	}
}

func TestXLSXWriter_WriteReturnsError(t *testing.T) {
	w := NewXLSXWriter("/tmp/out.xlsx")
	err := w.Write([]Record{{Collection: "A", ImageFilename: "a.jpg", XMLFilename: "a.xml"}})
	if err == nil {
		t.Fatal("Write() should fail when XLSX support is disabled")
	}
	if !errors.Is(err, ErrExcelNotEnabled) {
		t.Errorf("Write() error = %v, want ErrExcelNotEnabled", err)
	}
}

func TestSelect_FallsBackToCSV(t *testing.T) {
	w := Select("/tmp/out.xlsx")
	if w.Format() != FormatCSV {
		t.Errorf("Select(.xlsx).Format() = %v, want FormatCSV", w.Format())
	}
	if w.Path() != "/tmp/out.csv" {
		t.Errorf("Select(.xlsx).Path() = %q, want %q", w.Path(), "/tmp/out.csv")
	}
}
