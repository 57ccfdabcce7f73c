package collection

import (
	"os"
	"path/filepath"
	"testing"
)

// createCollection creates base/<name>/page with the given files.
func createCollection(t *testing.T, base, name string, files ...string) {
	t.Helper()

	pageDir := filepath.Join(base, name, "page")
	if err := os.MkdirAll(pageDir, 0755); err != nil {
		t.Fatalf("failed to create collection dir: %v", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(pageDir, f), []byte("<PcGts/>"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

func TestDiscover(t *testing.T) {
	base := t.TempDir()
	createCollection(t, base, "Letters_1850", "0002.xml", "0001.xml")
	createCollection(t, base, "Diary_Vol2", "0001.xml")

	collections, err := Discover(base)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(collections) != 2 {
		t.Fatalf("Discover() returned %d collections, want 2", len(collections))
	}

	// Sorted by name
	if collections[0].Name != "Diary_Vol2" || collections[1].Name != "Letters_1850" {
		t.Errorf("collections out of order: %q, %q", collections[0].Name, collections[1].Name)
	}

	// Files sorted within a collection
	letters := collections[1]
	if len(letters.Files) != 2 {
		t.Fatalf("Letters_1850 has %d files, want 2", len(letters.Files))
	}
	if filepath.Base(letters.Files[0]) != "0001.xml" || filepath.Base(letters.Files[1]) != "0002.xml" {
		t.Errorf("files out of order: %q, %q", letters.Files[0], letters.Files[1])
	}
}

func TestDiscover_SkipsNonCollections(t *testing.T) {
	base := t.TempDir()

	// Directory without page/ subdir
	os.MkdirAll(filepath.Join(base, "NoPageDir"), 0755)

	// Directory with empty page/ subdir
	os.MkdirAll(filepath.Join(base, "EmptyPageDir", "page"), 0755)

	// Directory whose page/ subdir holds only unrecognized files
	os.MkdirAll(filepath.Join(base, "OnlyImages", "page"), 0755)
	os.WriteFile(filepath.Join(base, "OnlyImages", "page", "scan.jpg"), []byte("x"), 0644)

	// Plain file at the top level
	os.WriteFile(filepath.Join(base, "readme.txt"), []byte("x"), 0644)

	createCollection(t, base, "Real", "0001.xml")

	collections, err := Discover(base)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(collections) != 1 || collections[0].Name != "Real" {
		t.Errorf("Discover() = %v, want only %q", collections, "Real")
	}
}

func TestDiscover_IgnoresNonXMLFiles(t *testing.T) {
	base := t.TempDir()
	createCollection(t, base, "Mixed", "0001.xml")
	os.WriteFile(filepath.Join(base, "Mixed", "page", "0001.jpg"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(base, "Mixed", "page", "Thumbs.db"), []byte("x"), 0644)

	collections, err := Discover(base)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(collections) != 1 {
		t.Fatalf("Discover() returned %d collections, want 1", len(collections))
	}
	if len(collections[0].Files) != 1 {
		t.Errorf("collection has %d files, want 1", len(collections[0].Files))
	}
}

func TestDiscover_MissingBase(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Discover() should return error for missing base path")
	}
}

func TestDiscover_BaseIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file.txt")
	os.WriteFile(base, []byte("x"), 0644)

	_, err := Discover(base)
	if err == nil {
		t.Error("Discover() should return error when base path is a file")
	}
}

func TestDiscover_EmptyBase(t *testing.T) {
	collections, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(collections) != 0 {
		t.Errorf("Discover() returned %d collections, want 0", len(collections))
	}
}
