// Package format provides input file recognition for PageXML collections.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PageXML indicates a PAGE (Page Analysis and Ground-truth Elements) XML document.
	PageXML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PageXML:
		return "PageXML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PageXML:
		return ".xml"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xml":
		return PageXML
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading file content to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the content does not look like a PAGE document.
func DetectFromMagic(data []byte) Format {
	// Skip a UTF-8 BOM and leading whitespace
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	data = data[start:]

	// A PAGE document starts with an XML declaration and/or a PcGts root
	// element. Only a bounded prefix is inspected so arbitrary input stays cheap.
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<PcGts")) {
		return PageXML
	}
	if bytes.HasPrefix(head, []byte("<PcGts")) {
		return PageXML
	}

	return Unknown
}
