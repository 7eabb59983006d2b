// =============================================================================
// XLIFF/CSV Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Command-line flags
// override anything set here.
//
// EXAMPLE (xliffhelper.yaml):
//   log_level: info
//   table:
//     delimiter: ","        # ",", "tab", "pipe", "semicolon" or one character
//     encoding: UTF-8       # encoding of delimited input
//     sheet_name: ""        # xlsx sheet; first sheet when empty
//     crlf: false           # end delimited rows with \r\n
//   xliff:
//     indent: "  "          # "" writes a compact document
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file loaded when --config is not given.
const DefaultConfigFile = "xliffhelper.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Table contains settings for the table format.
	Table TableSettings `yaml:"table"`

	// XLIFF contains settings for the XLIFF writer.
	XLIFF XLIFFSettings `yaml:"xliff"`
}

// TableSettings contains settings for reading and writing the table format.
type TableSettings struct {
	// Delimiter separates fields in delimited text.
	// Accepts a single character or one of the names "tab", "pipe",
	// "semicolon", "comma".
	// Default: "" (comma, or tab for .tsv files)
	Delimiter string `yaml:"delimiter"`

	// Encoding is the character encoding of delimited input.
	// Output is always UTF-8.
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// SheetName is the worksheet read from or written to xlsx files.
	// Default: "" (first sheet when reading, "Strings" when writing)
	SheetName string `yaml:"sheet_name"`

	// CRLF ends delimited rows with \r\n instead of \n.
	CRLF bool `yaml:"crlf"`
}

// XLIFFSettings contains settings for the XLIFF writer.
type XLIFFSettings struct {
	// Indent is one level of indentation; nil means the default of two
	// spaces, "" writes a compact document.
	Indent *string `yaml:"indent"`
}

// IndentString returns the configured indentation.
func (s XLIFFSettings) IndentString() string {
	if s.Indent == nil {
		return "  "
	}
	return *s.Indent
}

// Comma returns the delimiter as a rune for encoding/csv.
// Unknown or empty values fall back to a comma.
func (s TableSettings) Comma() rune {
	r, err := parseDelimiter(s.Delimiter)
	if err != nil {
		return ','
	}
	return r
}

// parseDelimiter resolves delimiter names and single characters.
func parseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "", ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("delimiter %q is not allowed", value)
	}

	return r, nil
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults instead of
//     an error. Used for the implicit default config path.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses, defaults and validates configuration YAML.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Table.Encoding == "" {
		config.Table.Encoding = "UTF-8"
	}
}

// validate checks option values that would otherwise fail mid-conversion.
func validate(config *Config) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	return config.Table.Validate()
}

// Validate checks the delimiter and encoding.
func (s TableSettings) Validate() error {
	if _, err := parseDelimiter(s.Delimiter); err != nil {
		return err
	}

	if _, err := htmlindex.Get(s.Encoding); err != nil && s.Encoding != "" {
		return fmt.Errorf("unknown encoding %q", s.Encoding)
	}

	return nil
}
