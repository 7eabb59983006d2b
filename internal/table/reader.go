// =============================================================================
// XLIFF/CSV Converter - Table Reader
// =============================================================================
//
// This module parses the flat table format into records. It handles:
//   - Different delimiters (comma, pipe, tab, semicolon)
//   - Input encodings other than UTF-8 (ISO-8859-1, Windows-1252, ...)
//   - A leading UTF-8 byte order mark
//   - Quoted fields containing delimiters, quotes and line breaks
//
// HEADER:
//   The first row names the columns. The five recognized fields
//   (identifier, file, language, note, text) may appear in any order and
//   are matched by name, ignoring case and surrounding spaces. Other columns
//   are ignored. A missing recognized field aborts the read.
//
// ORDERING:
//   Records are returned stable-sorted by their file field so that a later
//   XLIFF write produces one contiguous group per file.
//
// =============================================================================

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"golang.org/x/text/encoding/htmlindex"
)

// utf8BOM is stripped from the start of delimited input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Read parses delimited text and returns its records sorted by file.
//
// PARAMETERS:
//   - r: The delimited text source.
//   - settings: The table settings (delimiter, input encoding).
//
// RETURNS:
//   - One record per data row, stable-sorted by file.
//   - A *types.MissingFieldError if a recognized field is not in the header.
//   - An error if the input cannot be decoded or is not valid CSV.
//
// PARSING PROCESS:
//   1. Decode the input to UTF-8 if another encoding is configured
//   2. Strip a UTF-8 byte order mark
//   3. Read all rows with the configured delimiter
//   4. Map the header to field positions and build one record per row
func Read(r io.Reader, settings config.TableSettings) ([]types.Record, error) {
	decoded, err := decodeInput(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(decoded)
	if prefix, _ := reader.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		if _, err := reader.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
	}

	csvReader := csv.NewReader(reader)
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return recordsFromRows(allRows)
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.TableSettings) {
	reader.Comma = settings.Comma()

	// Rows may be shorter or longer than the header.
	reader.FieldsPerRecord = -1

	// Allow quotes that don't follow strict CSV rules.
	reader.LazyQuotes = true

	// Values are taken verbatim, so leading spaces are kept.
	reader.TrimLeadingSpace = false
}

// decodeInput wraps r with a decoder for the named encoding.
// An empty name or any spelling of UTF-8 returns r unchanged.
func decodeInput(r io.Reader, encodingName string) (io.Reader, error) {
	if isUTF8(encodingName) {
		return r, nil
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encodingName, err)
	}

	return enc.NewDecoder().Reader(r), nil
}

func isUTF8(encodingName string) bool {
	switch strings.ToLower(strings.TrimSpace(encodingName)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// =============================================================================
// ROW MAPPING
// =============================================================================

// recordsFromRows turns a header row plus data rows into sorted records.
// It is shared by the delimited and the spreadsheet readers.
func recordsFromRows(rows [][]string) ([]types.Record, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	positions, err := fieldPositions(header)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rows))

	for _, row := range rows[min(1, len(rows)):] {
		// Spreadsheets report blank rows as empty slices.
		if len(row) == 0 {
			continue
		}

		fields := make(map[string]string, len(positions))
		for name, index := range positions {
			if index < len(row) {
				fields[name] = row[index]
			} else {
				fields[name] = ""
			}
		}

		record, err := types.RecordFromMap(fields)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	// Re-group by file; rows of the same file keep their order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].File < records[j].File
	})

	return records, nil
}

// fieldPositions maps each recognized field to its column index.
//
// RETURNS:
//   - A map of field name -> column index.
//   - A *types.MissingFieldError for the first recognized field (in
//     FieldOrder) that is not in the header.
func fieldPositions(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}

	positions := make(map[string]int, len(types.FieldOrder))
	for _, field := range types.FieldOrder {
		index, ok := columns[field]
		if !ok {
			return nil, &types.MissingFieldError{Field: field}
		}
		positions[field] = index
	}

	return positions, nil
}
