// Package emptypages finds pages without transcribed text in Transkribus
// PageXML collections.
//
// Basic usage:
//
//	result, warnings, err := emptypages.Scan("/data/collections").Quiet().Run()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", emptypages.FormatWarnings(warnings))
//	}
//	err = report.Select("empty_pages.xlsx").Write(result.Records)
//
// For advanced use cases, the lower-level collection, pagexml, and report
// packages are also available.
package emptypages

// Scan returns a Detector for the given base directory. The base directory
// is expected to hold one subdirectory per collection, each with a page/
// subdirectory of PAGE documents.
//
// Example:
//
//	result, warnings, err := emptypages.Scan("/data/collections").Run()
func Scan(basePath string) *Detector {
	return &Detector{
		basePath: basePath,
		options:  defaultOptions(),
	}
}
