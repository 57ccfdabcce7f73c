// Package collection provides discovery of PageXML collections on disk.
//
// A collection is one archival unit exported from Transkribus: a directory
// holding a "page" subdirectory with one PAGE document per scanned page:
//
//	base/
//	  Letters_1850/
//	    page/
//	      0001.xml
//	      0002.xml
//	  Diary_Vol2/
//	    page/
//	      0001.xml
package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/CARomein/PageXML-Empty-Page-Finder/format"
)

// pageDirName is the document-holding subdirectory a collection must contain.
const pageDirName = "page"

// Collection is a named group of PAGE documents.
type Collection struct {
	// Name is the collection directory's name.
	Name string

	// Path is the collection directory.
	Path string

	// Files holds the full paths of the collection's documents, sorted by name.
	Files []string
}

// Discover returns the collections under base, sorted by name. A directory
// counts as a collection when it contains a page/ subdirectory with at least
// one recognized document; anything else is silently skipped. Discover fails
// only when base itself does not exist or is not a directory.
func Discover(base string) ([]Collection, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("base path %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base path %s is not a directory", base)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading base path: %w", err)
	}

	var collections []Collection
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		files := documentFiles(filepath.Join(base, entry.Name(), pageDirName))
		if len(files) == 0 {
			continue
		}

		collections = append(collections, Collection{
			Name:  entry.Name(),
			Path:  filepath.Join(base, entry.Name()),
			Files: files,
		})
	}

	sort.Slice(collections, func(i, j int) bool {
		return collections[i].Name < collections[j].Name
	})

	return collections, nil
}

// documentFiles lists the recognized documents in a page directory, sorted
// by name. A missing or unreadable directory yields nil.
func documentFiles(pageDir string) []string {
	entries, err := os.ReadDir(pageDir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if format.Detect(entry.Name()) != format.PageXML {
			continue
		}
		files = append(files, filepath.Join(pageDir, entry.Name()))
	}

	sort.Strings(files)
	return files
}
