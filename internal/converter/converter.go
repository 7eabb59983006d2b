// =============================================================================
// XLIFF/CSV Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates a single
// conversion run, from reading the input file to writing the output file.
//
// CONVERSION PIPELINE:
//   1. Check the conversion mode
//   2. Read the whole input file
//   3. Parse it into records (XLIFF reader or table reader)
//   4. Apply the language override, if any
//   5. Check the record set (table -> XLIFF only; findings are warnings)
//   6. Serialize the records (table writer or XLIFF writer)
//   7. Replace the output file atomically
//
// FAILURE MODEL:
//   Steps 1-6 never touch the output path. A run that fails leaves any
//   existing output file exactly as it was.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/table"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/validation"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/xliff"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/pkg/utils"
)

// =============================================================================
// MODE
// =============================================================================

// Mode selects the conversion direction.
type Mode int

const (
	// ModeXLIFFToTable converts an XLIFF document to a table ("--mode 1").
	ModeXLIFFToTable Mode = 1

	// ModeTableToXLIFF converts a table to an XLIFF document ("--mode 2").
	ModeTableToXLIFF Mode = 2
)

// ParseMode converts the command-line mode value.
//
// RETURNS:
//   - ModeXLIFFToTable for "1", ModeTableToXLIFF for "2".
//   - An error wrapping types.ErrInvalidMode for anything else, including
//     an empty value.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "1":
		return ModeXLIFFToTable, nil
	case "2":
		return ModeTableToXLIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q (use 1 for XLIFF to table, 2 for table to XLIFF)", types.ErrInvalidMode, value)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeXLIFFToTable:
		return "xliff-to-table"
	case ModeTableToXLIFF:
		return "table-to-xliff"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a conversion run.
type Result struct {
	// InputFile is the path to the input file that was processed.
	InputFile string

	// OutputFile is the path to the generated file.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	// This is nil if processing was successful.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about the processing.
type Stats struct {
	// Records is the number of records read from the input.
	Records int

	// FileGroups is the number of distinct file values.
	FileGroups int

	// LanguageOverridden is the number of records whose language was
	// changed by the language override.
	LanguageOverridden int

	// Findings is the number of validation findings logged.
	Findings int

	// OutputBytes is the size of the written output file.
	OutputBytes int64

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options configures a conversion run.
type Options struct {
	// Mode is the conversion direction.
	Mode Mode

	// InputPath is read completely before the output is touched.
	InputPath string

	// OutputPath is replaced atomically on success.
	OutputPath string

	// ISOCode, when non-empty, overrides the language of every record.
	ISOCode string

	// Table contains the table format settings. A ".xlsx" path selects the
	// spreadsheet format; a ".tsv" path defaults the delimiter to tab.
	Table config.TableSettings

	// XLIFF contains the XLIFF writer settings.
	XLIFF xliff.Options
}

// Converter runs one conversion.
type Converter struct {
	options Options
	logger  Logger
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter instance.
//
// PARAMETERS:
//   - options: The conversion options.
//   - logger: The logger; nil logs at info level to stderr.
//
// RETURNS:
//   - A new Converter instance.
func New(options Options, logger Logger) *Converter {
	if logger == nil {
		logger = defaultLogger()
	}

	return &Converter{
		options: options,
		logger:  logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - A Result struct containing the outcome of the processing. Result.Error
//     wraps one of the types sentinels (ErrInvalidMode, ErrIO, ErrParse,
//     ErrMissingAttribute, ErrMissingField) so callers can use errors.Is.
func (c *Converter) Run() (result Result) {
	startTime := time.Now()
	result = Result{
		InputFile: c.options.InputPath,
		Success:   false,
	}

	defer func() {
		result.Stats.ProcessingTime = time.Since(startTime)
	}()

	// =========================================================================
	// STEP 1: CHECK MODE
	// =========================================================================

	if c.options.Mode != ModeXLIFFToTable && c.options.Mode != ModeTableToXLIFF {
		result.Error = fmt.Errorf("%w: %d", types.ErrInvalidMode, int(c.options.Mode))
		return result
	}

	c.logger.Info("Converting %s (%s)", c.options.InputPath, c.options.Mode)

	// =========================================================================
	// STEP 2: READ INPUT
	// =========================================================================
	// The whole input is read before anything is written, so a broken input
	// can never truncate the output file.

	if !utils.FileExists(c.options.InputPath) {
		result.Error = fmt.Errorf("%w: input %s does not exist or is not a regular file", types.ErrIO, c.options.InputPath)
		return result
	}

	data, err := utils.ReadFile(c.options.InputPath)
	if err != nil {
		result.Error = fmt.Errorf("%w: %w", types.ErrIO, err)
		return result
	}

	c.logger.Debug("Read %d bytes from %s", len(data), c.options.InputPath)

	// =========================================================================
	// STEP 3: PARSE RECORDS
	// =========================================================================

	records, err := c.parse(data)
	if err != nil {
		result.Error = fmt.Errorf("failed to parse %s: %w", c.options.InputPath, err)
		return result
	}

	result.Stats.Records = len(records)
	result.Stats.FileGroups = countFiles(records)
	c.logger.Debug("Parsed %d records in %d file groups", result.Stats.Records, result.Stats.FileGroups)

	// =========================================================================
	// STEP 4: LANGUAGE OVERRIDE
	// =========================================================================

	if c.options.ISOCode != "" {
		if !validation.IsLanguageTag(c.options.ISOCode) {
			c.logger.Warn("Language code %q is not a well-formed BCP 47 tag; applying it anyway", c.options.ISOCode)
		}

		result.Stats.LanguageOverridden = ApplyLanguage(records, c.options.ISOCode)
		c.logger.Debug("Set language %q on %d records", c.options.ISOCode, result.Stats.LanguageOverridden)
	}

	// =========================================================================
	// STEP 5: CHECK RECORDS
	// =========================================================================
	// Problems in a hand-edited table are reported but do not stop the run.

	if c.options.Mode == ModeTableToXLIFF {
		result.Stats.Findings = c.check(records)
	}

	// =========================================================================
	// STEP 6: SERIALIZE
	// =========================================================================

	output, err := c.serialize(records)
	if err != nil {
		result.Error = fmt.Errorf("failed to generate output: %w", err)
		return result
	}

	// =========================================================================
	// STEP 7: WRITE OUTPUT
	// =========================================================================

	if err := utils.WriteFileAtomic(c.options.OutputPath, output); err != nil {
		result.Error = fmt.Errorf("%w: %w", types.ErrIO, err)
		return result
	}

	result.OutputFile = c.options.OutputPath
	result.Success = true

	// The output is already in place, so a failed stat only costs the size.
	if size, err := utils.FileSize(c.options.OutputPath); err != nil {
		c.logger.Warn("%v", err)
	} else {
		result.Stats.OutputBytes = size
	}

	c.logger.Info("Wrote %d records (%d bytes) to %s", len(records), result.Stats.OutputBytes, c.options.OutputPath)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parse reads records from the input in the format of the current mode.
func (c *Converter) parse(data []byte) ([]types.Record, error) {
	if c.options.Mode == ModeXLIFFToTable {
		return xliff.ParseBytes(data)
	}

	path := c.options.InputPath
	format := table.DetectFormat(path)
	c.logger.Debug("Reading %s table", format)

	return table.ReadFormat(data, format, table.SettingsForPath(path, c.options.Table))
}

// serialize writes records in the output format of the current mode.
func (c *Converter) serialize(records []types.Record) ([]byte, error) {
	if c.options.Mode == ModeTableToXLIFF {
		return xliff.GenerateWithOptions(records, c.options.XLIFF)
	}

	path := c.options.OutputPath
	format := table.DetectFormat(path)
	c.logger.Debug("Writing %s table", format)

	return table.WriteFormat(records, format, table.SettingsForPath(path, c.options.Table))
}

// check logs validation findings and returns how many there were.
func (c *Converter) check(records []types.Record) int {
	validator := validation.NewValidatorWithOptions(validation.ValidationOptions{
		// An override replaces every language, so language findings are moot.
		SkipLanguageChecks: c.options.ISOCode != "",
	})

	findings := validator.ValidateAll(records)
	for _, finding := range findings.Errors {
		c.logger.Warn("%s", finding.Error())
	}

	return len(findings.Errors)
}

// countFiles returns the number of distinct file values.
func countFiles(records []types.Record) int {
	files := make(map[string]struct{})
	for i := range records {
		files[records[i].File] = struct{}{}
	}
	return len(files)
}
