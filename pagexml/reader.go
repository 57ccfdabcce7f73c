// Package pagexml provides PAGE (Page Analysis and Ground-truth Elements)
// XML document parsing and page classification.
//
// PAGE is the transcription format exported by Transkribus and similar HTR
// platforms: one XML file per scanned page, with TextLine elements holding
// the transcribed text of each line inside TextEquiv/Unicode children.
package pagexml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/CARomein/PageXML-Empty-Page-Finder/format"
)

// Metadata holds document metadata from the PAGE Metadata element.
type Metadata struct {
	Creator    string
	Created    string
	LastChange string
}

// Document provides access to a parsed PAGE document.
type Document struct {
	filename string
	root     *pcGtsXML
}

// Open reads and parses a PAGE document. The file is fully parsed and closed
// before Open returns; the returned Document holds no file handle.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	doc.filename = filepath.Base(filename)
	return doc, nil
}

// Parse parses a PAGE document from a reader. Documents whose XML
// declaration names a non-UTF-8 encoding are decoded accordingly.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	if format.DetectFromMagic(data) != format.PageXML {
		return nil, fmt.Errorf("not a PAGE document")
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	root := &pcGtsXML{}
	if err := dec.Decode(root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &Document{root: root}, nil
}

// Filename returns the base name of the file the document was opened from,
// or "" for documents parsed from a reader.
func (d *Document) Filename() string {
	return d.filename
}

// PageCount returns the number of Page elements in the document.
// Transkribus exports carry exactly one, but the schema allows more.
func (d *Document) PageCount() int {
	return len(d.root.Pages)
}

// Metadata returns document metadata.
func (d *Document) Metadata() Metadata {
	meta := Metadata{}
	if d.root.Metadata != nil {
		meta.Creator = d.root.Metadata.Creator
		meta.Created = d.root.Metadata.Created
		meta.LastChange = d.root.Metadata.LastChange
	}
	return meta
}

// ImageFilename returns the imageFilename attribute of the document's first
// Page element. When the attribute is absent it falls back to the document's
// own filename without extension.
func (d *Document) ImageFilename() string {
	for _, page := range d.root.Pages {
		if page.ImageFilename != "" {
			return page.ImageFilename
		}
	}
	return strings.TrimSuffix(d.filename, filepath.Ext(d.filename))
}

// IsEmpty reports whether the document has no transcribed text. A document
// is empty when it contains no TextLine elements at all, or when every
// Unicode element nested under its text lines is empty or whitespace-only.
func (d *Document) IsEmpty() bool {
	lines := d.textLines()
	if len(lines) == 0 {
		return true
	}

	for _, line := range lines {
		if lineText(line) != "" {
			return false
		}
	}
	return true
}

// Text extracts and returns all transcribed text, one line per text line,
// skipping lines without content.
func (d *Document) Text() string {
	var parts []string
	for _, line := range d.textLines() {
		if text := lineText(line); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// textLines collects all TextLine elements in document order, descending
// through nested regions.
func (d *Document) textLines() []textLineXML {
	var lines []textLineXML
	for _, page := range d.root.Pages {
		lines = append(lines, page.Lines...)
		for _, region := range page.Regions {
			lines = collectLines(region, lines)
		}
	}
	return lines
}

// collectLines appends the lines of a region and its nested regions.
func collectLines(region textRegionXML, lines []textLineXML) []textLineXML {
	lines = append(lines, region.Lines...)
	for _, nested := range region.Regions {
		lines = collectLines(nested, lines)
	}
	return lines
}

// lineText returns the trimmed text of a line: the first non-empty Unicode
// content among the line's own TextEquiv elements, falling back to the
// word-level transcriptions joined with spaces.
func lineText(line textLineXML) string {
	for _, te := range line.TextEquiv {
		for _, u := range te.Unicode {
			if text := strings.TrimSpace(u.Value); text != "" {
				return text
			}
		}
	}

	var words []string
	for _, word := range line.Words {
		for _, te := range word.TextEquiv {
			for _, u := range te.Unicode {
				if text := strings.TrimSpace(u.Value); text != "" {
					words = append(words, text)
				}
			}
		}
	}
	return strings.Join(words, " ")
}
