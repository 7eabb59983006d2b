// =============================================================================
// XLIFF/CSV Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// itself performs a conversion; the other commands are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xliffhelper --mode <1|2> --input <path> --output <path>)
//   ├── validateCmd (xliffhelper validate --input <path>)
//   └── versionCmd (xliffhelper version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the optional configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/config"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/converter"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "xliffhelper",

	Short: "XLIFF/CSV Converter - Move translation strings between XLIFF 1.2 and tables",

	Long: `XLIFF/CSV Converter turns XLIFF 1.2 documents into flat tables that
translators can edit in a spreadsheet, and turns those tables back into
XLIFF 1.2.

Modes:
  1  XLIFF -> table (CSV, TSV or XLSX, chosen by the output extension)
  2  table -> XLIFF (CSV, TSV or XLSX, chosen by the input extension)

Table columns: identifier, file, language, note, text

Example Usage:
  xliffhelper --mode 1 --input app.xlf --output app.csv
  xliffhelper --mode 2 --input app.csv --output app.xlf --iso_code de
  xliffhelper --mode 1 --input app.xlf --output app.xlsx --sheet Texts
  xliffhelper validate --input app.csv`,

	// A failed conversion prints the error, not the usage text.
	SilenceUsage: true,

	// Errors are printed once by Execute.
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: A missing file is only an error when the flag is set
	// explicitly.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	registerConvertFlags(rootCmd)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration file named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")

	cfg, err := config.Load(cfgFile, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// newLogger creates the logger for a command; --verbose wins over the
// configured level.
func newLogger(cfg *config.Config) converter.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return converter.NewLogger(os.Stderr, level)
}
