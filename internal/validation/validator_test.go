package validation

import (
	"reflect"
	"testing"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
)

func rules(result *ValidationResult) []string {
	var got []string
	for _, e := range result.Errors {
		got = append(got, e.Rule)
	}
	return got
}

func TestValidate_Clean(t *testing.T) {
	records := []types.Record{
		{Identifier: "1", File: "a.txt", Language: "en", Text: "Hello"},
		{Identifier: "2", File: "a.txt", Language: "en", Text: "Bye"},
		{Identifier: "1", File: "b.txt", Language: "de-DE", Text: "Hallo"},
	}

	result := Validate(records)
	if !result.IsValid || len(result.Errors) != 0 {
		t.Errorf("Validate() = %+v, want no findings", result.Errors)
	}
	if result.RecordsValidated != 3 {
		t.Errorf("RecordsValidated = %d, want 3", result.RecordsValidated)
	}
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		records []types.Record
		want    []string
		valid   bool
	}{
		{
			name:    "missing identifier",
			records: []types.Record{{File: "a.txt", Language: "en"}},
			want:    []string{RuleMissingIdentifier},
		},
		{
			name:    "missing file",
			records: []types.Record{{Identifier: "1", Language: "en"}},
			want:    []string{RuleMissingFile},
		},
		{
			name: "duplicate key",
			records: []types.Record{
				{Identifier: "1", File: "a.txt", Language: "en"},
				{Identifier: "1", File: "a.txt", Language: "en"},
			},
			want: []string{RuleDuplicateKey},
		},
		{
			name: "same identifier in another file",
			records: []types.Record{
				{Identifier: "1", File: "a.txt", Language: "en"},
				{Identifier: "1", File: "b.txt", Language: "en"},
			},
			valid: true,
		},
		{
			name:    "missing language",
			records: []types.Record{{Identifier: "1", File: "a.txt"}},
			want:    []string{RuleMissingLanguage},
			valid:   true,
		},
		{
			name:    "invalid language",
			records: []types.Record{{Identifier: "1", File: "a.txt", Language: "not a tag"}},
			want:    []string{RuleInvalidLanguage},
			valid:   true,
		},
		{
			name: "mixed language",
			records: []types.Record{
				{Identifier: "1", File: "a.txt", Language: "en"},
				{Identifier: "2", File: "a.txt", Language: "fr"},
			},
			want:  []string{RuleMixedLanguage},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.records)
			if got := rules(result); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate() rules = %q, want %q", got, tt.want)
			}
			if result.IsValid != tt.valid {
				t.Errorf("IsValid = %v, want %v", result.IsValid, tt.valid)
			}
		})
	}
}

func TestValidate_Counts(t *testing.T) {
	records := []types.Record{
		{Identifier: "1", File: "a.txt", Language: "en"},
		{Identifier: "1", File: "a.txt", Language: "fr"},
	}

	result := Validate(records)
	if result.ErrorCount != 1 || result.WarningCount != 1 {
		t.Errorf("counts = %d errors, %d warnings, want 1 and 1", result.ErrorCount, result.WarningCount)
	}

	e := result.Errors[0]
	if e.Index != 1 || e.File != "a.txt" || e.Identifier != "1" {
		t.Errorf("finding = %+v, want record 1 of a.txt", e)
	}
	if e.Error() != `[ERROR] record 2 (file "a.txt", id "1"): duplicate of record 1` {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestValidatorOptions(t *testing.T) {
	records := []types.Record{
		{Identifier: "1", File: "a.txt", Language: "en"},
		{Identifier: "2", File: "a.txt", Language: "fr"},
	}

	strict := NewValidatorWithOptions(ValidationOptions{TreatWarningsAsErrors: true})
	if result := strict.ValidateAll(records); result.IsValid {
		t.Error("TreatWarningsAsErrors: IsValid = true, want false")
	}

	lenient := NewValidatorWithOptions(ValidationOptions{SkipLanguageChecks: true})
	if result := lenient.ValidateAll(records); len(result.Errors) != 0 {
		t.Errorf("SkipLanguageChecks: findings = %q, want none", rules(result))
	}
}

func TestIsLanguageTag(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"en", true},
		{"de-DE", true},
		{"zh-Hant-TW", true},
		{"", false},
		{" en", false},
		{"not a tag", false},
		{"e", false},
		{"en--US", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsLanguageTag(tt.code); got != tt.want {
				t.Errorf("IsLanguageTag(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
