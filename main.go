// =============================================================================
// XLIFF/CSV Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XLIFF/CSV Converter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   xliffhelper --mode 1 --input app.xlf --output app.csv   - XLIFF to table
//   xliffhelper --mode 2 --input app.csv --output app.xlf   - table to XLIFF
//   xliffhelper validate --input app.csv                    - check a file
//   xliffhelper version                                     - show the version
//
// ARCHITECTURE:
//   - cmd/                : CLI command definitions (Cobra)
//   - internal/types      : Record and error types
//   - internal/xliff      : XLIFF 1.2 reader and writer
//   - internal/table      : CSV/TSV/XLSX reader and writer
//   - internal/converter  : Conversion run, language override, logging
//   - internal/validation : Record-set checks
//   - internal/config     : YAML configuration
//   - pkg/utils           : File reading and atomic writes
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/XLIFF-CSV-conversion/cmd"
)

func main() {
	cmd.Execute()
}
