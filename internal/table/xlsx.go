// =============================================================================
// XLIFF/CSV Converter - XLSX Table Format
// =============================================================================
//
// This module reads and writes the table format as an Excel workbook, for
// translators who work in a spreadsheet rather than a CSV editor. The sheet
// layout is the same as the delimited format:
//
//   | Column A   | Column B | Column C | Column D | Column E |
//   |------------|----------|----------|----------|----------|
//   | identifier | file     | language | note     | text     |
//   | 1          | a.txt    | en       |          | Hello    |
//   | 2          | a.txt    | en       | informal | Bye      |
//
// Every cell is written as a string so identifiers such as "007" keep their
// leading zeros. A value longer than a cell can hold (32767 characters) is
// an error rather than being cut.
//
// =============================================================================

package table

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet written when no sheet name is configured.
const DefaultSheetName = "Strings"

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadXLSX reads records from a workbook.
//
// PARAMETERS:
//   - r: The workbook content.
//   - settings: The table settings. SheetName selects the sheet; when it is
//     empty the first sheet is used.
//
// RETURNS:
//   - One record per non-blank data row, stable-sorted by file.
//   - A *types.MissingFieldError if a recognized field is not in the header.
//   - An error if the workbook or sheet cannot be read.
func ReadXLSX(r io.Reader, settings config.TableSettings) ([]types.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := settings.SheetName
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}

	return recordsFromRows(rows)
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// WriteXLSX serializes records into a workbook with a single sheet.
//
// The first row is the header in types.FieldOrder; each record follows in
// input order. Values over excelize.TotalCellChars characters are rejected.
func WriteXLSX(records []types.Record, settings config.TableSettings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := settings.SheetName
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
	}

	header := Header()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}

		values := records[i].Values()
		for j, value := range values {
			if utf8.RuneCountInString(value) > excelize.TotalCellChars {
				return nil, fmt.Errorf("row %d: %s value has %d characters, more than the %d a cell can hold",
					i+2, types.FieldOrder[j], utf8.RuneCountInString(value), excelize.TotalCellChars)
			}
		}

		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
