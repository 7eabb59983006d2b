// =============================================================================
// XLIFF/CSV Converter - Shared Types
// =============================================================================
//
// This package contains the types shared by every reader and writer so that
// the format packages never need to import each other. Types defined here are
// used by:
//   - xliff
//   - table
//   - converter
//   - validation
//
// =============================================================================

package types

import (
	"fmt"
)

// =============================================================================
// FIELD NAMES
// =============================================================================

// Field names recognized in the table header and in record mappings.
const (
	FieldIdentifier = "identifier"
	FieldFile       = "file"
	FieldLanguage   = "language"
	FieldNote       = "note"
	FieldText       = "text"
)

// FieldOrder is the fixed column order of the table format.
// Arrays are copied on assignment, so callers cannot reorder it for others.
var FieldOrder = [...]string{
	FieldIdentifier,
	FieldFile,
	FieldLanguage,
	FieldNote,
	FieldText,
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one localized string entry.
// An unset field is represented by the empty string.
type Record struct {
	// Identifier is the trans-unit id. Unique within a File group.
	Identifier string

	// Language is the source-language code of the record's file group.
	Language string

	// File is the grouping key (the original source file path).
	File string

	// Text is the translatable content.
	Text string

	// Note is an optional annotation for translators.
	Note string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// RecordFromMap builds a record from a field-name to value mapping.
//
// PARAMETERS:
//   - fields: A mapping that must contain all five recognized field names.
//     Extra keys are ignored.
//
// RETURNS:
//   - The populated record.
//   - A *MissingFieldError naming the first absent field (in FieldOrder).
func RecordFromMap(fields map[string]string) (*Record, error) {
	for _, name := range FieldOrder {
		if _, ok := fields[name]; !ok {
			return nil, &MissingFieldError{Field: name}
		}
	}

	return &Record{
		Identifier: fields[FieldIdentifier],
		Language:   fields[FieldLanguage],
		File:       fields[FieldFile],
		Text:       fields[FieldText],
		Note:       fields[FieldNote],
	}, nil
}

// Map returns the record as a field-name to value mapping.
func (r *Record) Map() map[string]string {
	return map[string]string{
		FieldIdentifier: r.Identifier,
		FieldLanguage:   r.Language,
		FieldFile:       r.File,
		FieldText:       r.Text,
		FieldNote:       r.Note,
	}
}

// Get returns the value of a named field, or "" for unknown names.
func (r *Record) Get(name string) string {
	switch name {
	case FieldIdentifier:
		return r.Identifier
	case FieldLanguage:
		return r.Language
	case FieldFile:
		return r.File
	case FieldText:
		return r.Text
	case FieldNote:
		return r.Note
	default:
		return ""
	}
}

// Values returns the field values in FieldOrder.
// This is the row written by the table writers.
func (r *Record) Values() []string {
	values := make([]string, len(FieldOrder))
	for i, name := range FieldOrder {
		values[i] = r.Get(name)
	}
	return values
}

// Key returns the (file, identifier) pair that should be unique across a
// record set.
func (r *Record) Key() RecordKey {
	return RecordKey{File: r.File, Identifier: r.Identifier}
}

func (r *Record) String() string {
	return fmt.Sprintf("<Record %s:%s => %q>", r.File, r.Identifier, r.Text)
}

// RecordKey identifies a record within a record set.
type RecordKey struct {
	File       string
	Identifier string
}
