package emptypages

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during a scan, such as
// a document that could not be parsed. Warnings never abort the scan; the
// affected document simply contributes no record.
type Warning struct {
	// Collection is the name of the collection the document belongs to.
	Collection string

	// File is the base name of the affected document.
	File string

	// Message describes the problem.
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("%s/%s: %s", w.Collection, w.File, w.Message)
}

// FormatWarnings formats a list of warnings as one line per warning.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
