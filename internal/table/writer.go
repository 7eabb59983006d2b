package table

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
)

// Header returns the header row written by every table writer.
func Header() []string {
	header := types.FieldOrder
	return header[:]
}

// Write serializes records as delimited text.
//
// The header row lists the recognized fields in types.FieldOrder, followed by
// one row per record in input order. Unset fields are written empty.
func Write(records []types.Record, settings config.TableSettings) ([]byte, error) {
	var buffer bytes.Buffer

	w := csv.NewWriter(&buffer)
	w.Comma = settings.Comma()
	w.UseCRLF = settings.CRLF

	if err := w.Write(Header()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i := range records {
		if err := w.Write(records[i].Values()); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	return buffer.Bytes(), nil
}
