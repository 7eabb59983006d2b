package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Table.Encoding != "UTF-8" {
		t.Errorf("Table.Encoding = %q, want %q", cfg.Table.Encoding, "UTF-8")
	}
	if cfg.Table.Comma() != ',' {
		t.Errorf("Table.Comma() = %q, want ','", cfg.Table.Comma())
	}
	if got := cfg.XLIFF.IndentString(); got != "  " {
		t.Errorf("XLIFF.IndentString() = %q, want two spaces", got)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
log_level: debug
table:
  delimiter: semicolon
  encoding: windows-1252
  sheet_name: Texts
  crlf: true
xliff:
  indent: ""
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Table.Comma() != ';' {
		t.Errorf("Table.Comma() = %q, want ';'", cfg.Table.Comma())
	}
	if cfg.Table.SheetName != "Texts" || !cfg.Table.CRLF {
		t.Errorf("Table = %+v", cfg.Table)
	}
	if got := cfg.XLIFF.IndentString(); got != "" {
		t.Errorf("XLIFF.IndentString() = %q, want empty", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "table: [unclosed"},
		{"long delimiter", "table:\n  delimiter: '::'"},
		{"quote delimiter", "table:\n  delimiter: '\"'"},
		{"unknown encoding", "table:\n  encoding: klingon-8"},
		{"unknown log level", "log_level: chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) error = nil, want error", tt.data)
			}
		})
	}
}

func TestComma(t *testing.T) {
	tests := []struct {
		delimiter string
		want      rune
	}{
		{"", ','},
		{"tab", '\t'},
		{`\t`, '\t'},
		{"PIPE", '|'},
		{"|", '|'},
		{";", ';'},
		{"#", '#'},
		{"not-valid", ','},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			s := TableSettings{Delimiter: tt.delimiter}
			if got := s.Comma(); got != tt.want {
				t.Errorf("Comma(%q) = %q, want %q", tt.delimiter, got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load(optional) error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load(optional) LogLevel = %q, want defaults", cfg.LogLevel)
	}

	if _, err := Load(path, true); err == nil {
		t.Error("Load(required) error = nil, want error for missing file")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xliffhelper.yaml")
	if err := os.WriteFile(path, []byte("table:\n  delimiter: tab\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Table.Comma() != '\t' {
		t.Errorf("Table.Comma() = %q, want tab", cfg.Table.Comma())
	}
}
