// Command emptypages scans Transkribus PageXML collections for pages
// without transcribed text and writes them to a tabular report.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	emptypages "github.com/CARomein/PageXML-Empty-Page-Finder"
	"github.com/CARomein/PageXML-Empty-Page-Finder/report"
)

const defaultOutput = "empty_pages.xlsx"

func main() {
	var output string
	var quiet bool

	flag.StringVar(&output, "output", defaultOutput, "output report path")
	flag.StringVar(&output, "o", defaultOutput, "output report path (shorthand)")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
	flag.BoolVar(&quiet, "q", false, "suppress progress output (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emptypages [flags] [base_path]\n")
		fmt.Fprintf(os.Stderr, "Detects pages without transcribed text in PageXML collections.\n")
		fmt.Fprintf(os.Stderr, "Expected structure: base_path/Collection_Name/page/*.xml\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	basePath := flag.Arg(0)
	if basePath == "" {
		basePath = promptBasePath()
		if basePath == "" {
			fmt.Fprintln(os.Stderr, "Error: no path provided")
			os.Exit(1)
		}
	}

	if err := run(basePath, output, quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// promptBasePath asks for the base path interactively.
func promptBasePath() string {
	fmt.Print("Enter path to collections directory: ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func run(basePath, output string, quiet bool) error {
	if !quiet {
		fmt.Println("=== Empty Page Detection Tool ===")
		fmt.Println()
	}

	detector := emptypages.Scan(basePath)
	if quiet {
		detector = detector.Quiet()
	}

	result, warnings, err := detector.Run()
	if err != nil {
		return err
	}
	if quiet && len(warnings) > 0 {
		// Progress output carried the warnings in a normal run
		fmt.Fprintln(os.Stderr, emptypages.FormatWarnings(warnings))
	}
	if len(result.Collections) == 0 {
		return fmt.Errorf("no collections found under %s (expected base_path/Collection_Name/page/*.xml)", basePath)
	}

	if !quiet {
		fmt.Println()
		fmt.Println("=== Summary ===")
		fmt.Printf("Total empty pages found: %d\n", result.TotalEmpty())
		fmt.Printf("Collections processed: %d\n", len(result.Collections))
		if len(warnings) > 0 {
			fmt.Printf("Documents skipped: %d\n", len(warnings))
		}
	}

	if result.TotalEmpty() == 0 {
		fmt.Println()
		fmt.Println("No empty pages found. All pages contain transcribed text.")
		return nil
	}

	fmt.Println()
	fmt.Println("Generating output file...")

	writer := report.Select(output)
	if writer.Format() == report.FormatCSV && !strings.EqualFold(filepath.Ext(output), ".csv") {
		fmt.Println("Note: XLSX support not compiled in, creating CSV instead")
	}

	if err := writer.Write(result.Records); err != nil {
		return err
	}

	fmt.Printf("Report generated: %s\n", writer.Path())
	return nil
}
