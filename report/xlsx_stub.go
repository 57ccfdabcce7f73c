//go:build noexcel

package report

// This is the stub XLSX backend used when the "noexcel" build tag is set,
// for builds that must not carry the spreadsheet dependency. Select never
// returns an XLSXWriter in such builds; constructing one directly yields a
// writer whose Write always fails with ErrExcelNotEnabled.

// ExcelEnabled reports whether the XLSX writer was compiled in.
func ExcelEnabled() bool {
	return false
}

// XLSXWriter is a stub spreadsheet writer that fails all writes.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter returns a stub writer for path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Path returns the file the writer would produce.
func (w *XLSXWriter) Path() string {
	return w.path
}

// Format returns FormatXLSX.
func (w *XLSXWriter) Format() Format {
	return FormatXLSX
}

// Write returns ErrExcelNotEnabled.
func (w *XLSXWriter) Write(records []Record) error {
	return ErrExcelNotEnabled
}
