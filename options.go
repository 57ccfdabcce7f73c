package emptypages

import (
	"io"
	"os"
)

// scanOptions holds configuration for a scan.
type scanOptions struct {
	// progress receives human-readable progress output
	progress io.Writer

	// progressEvery controls how often a per-file progress line is written
	progressEvery int
}

// defaultOptions returns the default scan options.
func defaultOptions() scanOptions {
	return scanOptions{
		progress:      os.Stdout,
		progressEvery: 10,
	}
}

// clone creates a copy of scanOptions.
func (o scanOptions) clone() scanOptions {
	return scanOptions{
		progress:      o.progress,
		progressEvery: o.progressEvery,
	}
}
