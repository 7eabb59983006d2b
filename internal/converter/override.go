package converter

import "github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"

// ApplyLanguage sets the language of every record to code.
//
// An empty code leaves the records untouched. Nothing but the language
// field is modified, and the code is applied verbatim.
//
// RETURNS:
//   - The number of records whose language actually changed.
func ApplyLanguage(records []types.Record, code string) int {
	if code == "" {
		return 0
	}

	changed := 0
	for i := range records {
		if records[i].Language != code {
			records[i].Language = code
			changed++
		}
	}

	return changed
}
