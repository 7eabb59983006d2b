// =============================================================================
// XLIFF/CSV Converter - Validation Engine
// =============================================================================
//
// This module checks a record set for problems that the converter itself
// tolerates but that usually indicate a broken translation table:
//   - Records without an identifier or a file
//   - Two records with the same (file, identifier) pair
//   - Missing or malformed language codes
//   - Records whose language differs from the rest of their file group
//
// The last check matters because the XLIFF writer takes the language of a
// file group from its first record only; any other language in the same
// file is silently replaced in the generated document.
//
// ERROR HANDLING:
//   - Findings are collected, never returned as a Go error
//   - Each finding names the rule, the file and the identifier
//   - Findings are errors (the data is ambiguous) or warnings (the data
//     converts, but probably not the way the author intended)
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"golang.org/x/text/language"
)

// =============================================================================
// SEVERITIES AND RULES
// =============================================================================

const (
	// SeverityError marks a finding that makes the record set ambiguous.
	SeverityError = "error"

	// SeverityWarning marks a finding that still converts.
	SeverityWarning = "warning"
)

const (
	RuleMissingIdentifier = "missing_identifier"
	RuleMissingFile       = "missing_file"
	RuleDuplicateKey      = "duplicate_key"
	RuleMissingLanguage   = "missing_language"
	RuleInvalidLanguage   = "invalid_language"
	RuleMixedLanguage     = "mixed_language"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Rule is the rule that was violated (one of the Rule constants).
	Rule string

	// File and Identifier locate the offending record.
	File       string
	Identifier string

	// Index is the position of the record in the validated slice.
	Index int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] record %d (file %q, id %q): %s",
		strings.ToUpper(e.Severity),
		e.Index+1,
		e.File,
		e.Identifier,
		e.Message,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no error-severity findings.
	IsValid bool

	// Errors contains all findings, including warnings, in record order.
	Errors []*ValidationError

	// ErrorCount is the number of error-severity findings.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// RecordsValidated is the number of records checked.
	RecordsValidated int
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks record sets.
type Validator struct {
	options ValidationOptions
}

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// TreatWarningsAsErrors makes any warning clear IsValid.
	// Default: false
	TreatWarningsAsErrors bool

	// SkipLanguageChecks disables the missing, invalid and mixed language
	// rules. Useful when a language override will replace every value.
	// Default: false
	SkipLanguageChecks bool
}

// DefaultValidationOptions returns the default validation options.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{}
}

// NewValidator creates a new Validator with the default options.
func NewValidator() *Validator {
	return &Validator{options: DefaultValidationOptions()}
}

// NewValidatorWithOptions creates a new Validator with custom options.
func NewValidatorWithOptions(options ValidationOptions) *Validator {
	return &Validator{options: options}
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks records with the default options.
//
// PARAMETERS:
//   - records: The records to check, in the order they will be written.
//
// RETURNS:
//   - A ValidationResult; never nil.
func Validate(records []types.Record) *ValidationResult {
	return NewValidator().ValidateAll(records)
}

// ValidateAll checks every record and returns a detailed result.
func (v *Validator) ValidateAll(records []types.Record) *ValidationResult {
	result := &ValidationResult{
		IsValid:          true,
		Errors:           make([]*ValidationError, 0),
		RecordsValidated: len(records),
	}

	seen := make(map[types.RecordKey]int, len(records))
	groupLanguage := make(map[string]string)

	for i := range records {
		for _, finding := range v.validateRecord(i, &records[i], seen, groupLanguage) {
			result.add(finding, v.options.TreatWarningsAsErrors)
		}
	}

	return result
}

// add records a finding and updates the counters.
func (r *ValidationResult) add(finding *ValidationError, warningsAreErrors bool) {
	r.Errors = append(r.Errors, finding)

	if finding.Severity == SeverityError {
		r.ErrorCount++
		r.IsValid = false
		return
	}

	r.WarningCount++
	if warningsAreErrors {
		r.IsValid = false
	}
}

// validateRecord applies every rule to one record.
//
// seen maps each (file, identifier) key to the index of its first record;
// groupLanguage maps each file to the language of its first record.
func (v *Validator) validateRecord(index int, record *types.Record, seen map[types.RecordKey]int, groupLanguage map[string]string) []*ValidationError {
	var findings []*ValidationError

	finding := func(severity, rule, format string, args ...interface{}) {
		findings = append(findings, &ValidationError{
			Severity:   severity,
			Rule:       rule,
			File:       record.File,
			Identifier: record.Identifier,
			Index:      index,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	// =========================================================================
	// REQUIRED KEY FIELDS
	// =========================================================================

	if record.Identifier == "" {
		finding(SeverityError, RuleMissingIdentifier, "identifier is empty")
	}

	if record.File == "" {
		finding(SeverityError, RuleMissingFile, "file is empty")
	}

	// =========================================================================
	// UNIQUENESS
	// =========================================================================

	if record.Identifier != "" {
		key := record.Key()
		if first, exists := seen[key]; exists {
			finding(SeverityError, RuleDuplicateKey, "duplicate of record %d", first+1)
		} else {
			seen[key] = index
		}
	}

	if v.options.SkipLanguageChecks {
		return findings
	}

	// =========================================================================
	// LANGUAGE
	// =========================================================================

	if record.Language == "" {
		finding(SeverityWarning, RuleMissingLanguage, "language is empty")
	} else if !IsLanguageTag(record.Language) {
		finding(SeverityWarning, RuleInvalidLanguage, "language %q is not a well-formed BCP 47 tag", record.Language)
	}

	first, exists := groupLanguage[record.File]
	if !exists {
		groupLanguage[record.File] = record.Language
	} else if record.Language != first {
		finding(SeverityWarning, RuleMixedLanguage,
			"language %q differs from %q used by the file group; the XLIFF output will use %q",
			record.Language, first, first)
	}

	return findings
}

// =============================================================================
// LANGUAGE HELPERS
// =============================================================================

// IsLanguageTag reports whether code parses as a BCP 47 language tag.
func IsLanguageTag(code string) bool {
	if strings.TrimSpace(code) != code || code == "" {
		return false
	}

	_, err := language.Parse(code)
	return err == nil
}
