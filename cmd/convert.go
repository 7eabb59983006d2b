// =============================================================================
// XLIFF/CSV Converter - Convert Command
// =============================================================================
//
// This file holds the flags and the run function of the conversion, which
// is performed by the root command.
//
// COMMAND USAGE:
//   xliffhelper --mode <1|2> --input <path> --output <path> [flags]
//
// FLAGS:
//   --mode       : 1 = XLIFF -> table, 2 = table -> XLIFF (required)
//   --input      : Source file (required)
//   --output     : Destination file, replaced on success (required)
//   --iso_code   : Language code forced onto every record
//   --delimiter  : Table delimiter (overrides the config file)
//   --sheet      : XLSX sheet name (overrides the config file)
//
// PROCESSING PIPELINE:
//   1. Check the mode (before any file is touched)
//   2. Load the configuration file
//   3. Merge flag overrides into the table settings
//   4. Run the converter
//   5. Print a one-line summary
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/converter"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/xliff"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	// modeFlag is kept as a string so that a missing or non-numeric value
	// is reported as an invalid mode.
	modeFlag string

	inputPath  string
	outputPath string
	isoCode    string

	// delimiter and sheetName override the config file when set.
	delimiter string
	sheetName string
)

// registerConvertFlags adds the conversion flags to cmd.
func registerConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modeFlag, "mode", "", "Conversion mode: 1 = XLIFF to table, 2 = table to XLIFF")
	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the input file")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path to the output file (.csv, .tsv, .xlsx or .xlf)")
	cmd.Flags().StringVar(&isoCode, "iso_code", "", "Language code to set on every record (e.g. de-DE)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", `Table delimiter: ",", "tab", "pipe", "semicolon" or one character`)
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name for .xlsx tables")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert validates the flags and runs one conversion.
func runConvert(cmd *cobra.Command) error {
	// =========================================================================
	// STEP 1: CHECK ARGUMENTS
	// =========================================================================

	mode, err := converter.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	if inputPath == "" {
		return errors.New("--input is required")
	}
	if outputPath == "" {
		return errors.New("--output is required")
	}

	// =========================================================================
	// STEP 2: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	// =========================================================================
	// STEP 3: APPLY FLAG OVERRIDES
	// =========================================================================

	settings := cfg.Table
	if cmd.Flags().Changed("delimiter") {
		settings.Delimiter = delimiter
	}
	if cmd.Flags().Changed("sheet") {
		settings.SheetName = sheetName
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid table settings: %w", err)
	}

	// =========================================================================
	// STEP 4: CONVERT
	// =========================================================================

	options := converter.Options{
		Mode:       mode,
		InputPath:  inputPath,
		OutputPath: outputPath,
		ISOCode:    isoCode,
		Table:      settings,
		XLIFF:      xliff.Options{Indent: cfg.XLIFF.IndentString()},
	}

	result := converter.New(options, logger).Run()
	if !result.Success {
		return result.Error
	}

	// =========================================================================
	// STEP 5: PRINT SUMMARY
	// =========================================================================

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d records in %d file group(s), %d bytes (%s)\n",
		result.InputFile,
		result.OutputFile,
		result.Stats.Records,
		result.Stats.FileGroups,
		result.Stats.OutputBytes,
		result.Stats.ProcessingTime.Round(time.Microsecond),
	)

	return nil
}
