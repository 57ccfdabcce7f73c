package emptypages

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/CARomein/PageXML-Empty-Page-Finder/collection"
	"github.com/CARomein/PageXML-Empty-Page-Finder/pagexml"
	"github.com/CARomein/PageXML-Empty-Page-Finder/report"
)

// Detector scans collections of PAGE documents for empty pages.
// Detectors are immutable: each chain method returns a new instance.
type Detector struct {
	basePath string
	options  scanOptions
}

// CollectionSummary holds the per-collection counts of a finished scan.
type CollectionSummary struct {
	// Name is the collection's name.
	Name string

	// Documents is the number of documents processed.
	Documents int

	// Empty is the number of documents classified as empty.
	Empty int
}

// Result holds the outcome of a scan.
type Result struct {
	// Records lists the empty pages found, ordered by collection name and
	// then by document name.
	Records []report.Record

	// Collections summarizes every processed collection, in the order
	// they were processed.
	Collections []CollectionSummary
}

// TotalEmpty returns the total number of empty pages found.
func (r *Result) TotalEmpty() int {
	return len(r.Records)
}

// clone creates a copy of the Detector with a copy of its options.
func (d *Detector) clone() *Detector {
	return &Detector{
		basePath: d.basePath,
		options:  d.options.clone(),
	}
}

// Quiet returns a Detector that suppresses progress output.
func (d *Detector) Quiet() *Detector {
	newDet := d.clone()
	newDet.options.progress = io.Discard
	return newDet
}

// Progress returns a Detector writing progress output to w.
func (d *Detector) Progress(w io.Writer) *Detector {
	newDet := d.clone()
	newDet.options.progress = w
	return newDet
}

// Run executes the scan: collections in name order, documents in name order
// within each collection. Documents that fail to parse are reported as
// warnings and skipped. Run fails only when the base path cannot be read;
// a base path with no collections yields an empty Result.
func (d *Detector) Run() (*Result, []Warning, error) {
	collections, err := collection.Discover(d.basePath)
	if err != nil {
		return nil, nil, err
	}

	out := d.options.progress
	if len(collections) > 0 {
		fmt.Fprintf(out, "Found %d collection(s):\n", len(collections))
		for _, col := range collections {
			fmt.Fprintf(out, "  - %s\n", col.Name)
		}
	}

	result := &Result{}
	var warnings []Warning

	for _, col := range collections {
		summary, colWarnings := d.processCollection(col, result)
		result.Collections = append(result.Collections, summary)
		warnings = append(warnings, colWarnings...)
	}

	return result, warnings, nil
}

// processCollection classifies every document of one collection, appending
// empty-page records to result.
func (d *Detector) processCollection(col collection.Collection, result *Result) (CollectionSummary, []Warning) {
	out := d.options.progress
	fmt.Fprintf(out, "\n  Processing collection: %s\n", col.Name)
	fmt.Fprintf(out, "  Found %d XML files\n", len(col.Files))

	var warnings []Warning
	empty := 0

	for i, file := range col.Files {
		if d.options.progressEvery > 0 && (i+1)%d.options.progressEvery == 0 {
			fmt.Fprintf(out, "    Processed %d/%d files\n", i+1, len(col.Files))
		}

		name := filepath.Base(file)
		doc, err := pagexml.Open(file)
		if err != nil {
			fmt.Fprintf(out, "  Warning: could not parse %s: %v\n", name, err)
			warnings = append(warnings, Warning{
				Collection: col.Name,
				File:       name,
				Message:    err.Error(),
			})
			continue
		}

		if doc.IsEmpty() {
			result.Records = append(result.Records, report.Record{
				Collection:    col.Name,
				ImageFilename: doc.ImageFilename(),
				XMLFilename:   name,
			})
			empty++
		}
	}

	fmt.Fprintf(out, "  Found %d empty page(s) in %s\n", empty, col.Name)

	return CollectionSummary{
		Name:      col.Name,
		Documents: len(col.Files),
		Empty:     empty,
	}, warnings
}
