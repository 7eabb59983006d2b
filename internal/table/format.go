package table

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
)

// Format is a physical representation of the table.
type Format int

const (
	// FormatDelimited is delimited text (CSV, TSV, ...).
	FormatDelimited Format = iota

	// FormatXLSX is an Excel workbook.
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	default:
		return "delimited"
	}
}

// Extensions lists the table file extensions with dedicated handling. Any
// other extension is read and written as comma-separated text.
func Extensions() []string {
	return []string{".csv", ".tsv", ".xlsx"}
}

// DetectFormat picks the table format from a file name's extension.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatDelimited
}

// SettingsForPath fills path-dependent defaults: a ".tsv" file without a
// configured delimiter is tab separated.
func SettingsForPath(path string, settings config.TableSettings) config.TableSettings {
	if settings.Delimiter == "" && strings.EqualFold(filepath.Ext(path), ".tsv") {
		settings.Delimiter = "tab"
	}
	return settings
}

// ReadFormat reads records in the given format.
func ReadFormat(data []byte, format Format, settings config.TableSettings) ([]types.Record, error) {
	if format == FormatXLSX {
		return ReadXLSX(bytes.NewReader(data), settings)
	}
	return Read(bytes.NewReader(data), settings)
}

// WriteFormat writes records in the given format.
func WriteFormat(records []types.Record, format Format, settings config.TableSettings) ([]byte, error) {
	if format == FormatXLSX {
		return WriteXLSX(records, settings)
	}
	return Write(records, settings)
}
