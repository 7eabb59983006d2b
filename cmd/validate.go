// =============================================================================
// XLIFF/CSV Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which reads an XLIFF document or
// a table and reports problems without converting anything.
//
// COMMAND USAGE:
//   xliffhelper validate --input <path> [--strict]
//
// INPUT FORMAT:
//   .xlf, .xliff and .xml files are read as XLIFF; .xlsx files as a
//   workbook; anything else as delimited text.
//
// EXIT STATUS:
//   Non-zero when the input cannot be read or when error findings exist
//   (or warnings, with --strict).
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/table"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/validation"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/xliff"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/pkg/utils"
	"github.com/spf13/cobra"
)

// validateInput is the file to check.
var validateInput string

// strict treats warnings as errors.
var strict bool

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an XLIFF document or table for problems",
	Long: `Validate reads an XLIFF document or a table and reports:
  - records without an identifier or a file (error)
  - duplicate (file, identifier) pairs (error)
  - empty or malformed language codes (warning)
  - records whose language differs from the rest of their file (warning)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateInput, "input", "", "Path to the file to validate")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	validateCmd.MarkFlagRequired("input")
}

// runValidate reads the input and prints every finding.
func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	records, err := readRecords(validateInput, cfg.Table)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", validateInput, err)
	}

	logger.Debug("Read %d records from %s", len(records), validateInput)

	validator := validation.NewValidatorWithOptions(validation.ValidationOptions{
		TreatWarningsAsErrors: strict,
	})
	result := validator.ValidateAll(records)

	out := cmd.OutOrStdout()
	for _, finding := range result.Errors {
		fmt.Fprintln(out, finding.Error())
	}
	fmt.Fprintf(out, "%d records, %d errors, %d warnings\n",
		result.RecordsValidated, result.ErrorCount, result.WarningCount)

	if !result.IsValid {
		return fmt.Errorf("validation failed for %s", validateInput)
	}

	return nil
}

// readRecords reads records from path, choosing the reader by extension.
func readRecords(path string, settings config.TableSettings) ([]types.Record, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIO, err)
	}

	if isXLIFFPath(path) {
		return xliff.ParseBytes(data)
	}

	return table.ReadFormat(data, table.DetectFormat(path), table.SettingsForPath(path, settings))
}

// isXLIFFPath reports whether path has an XLIFF file extension.
func isXLIFFPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlf", ".xliff", ".xml":
		return true
	}
	return false
}
