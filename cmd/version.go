// =============================================================================
// XLIFF/CSV Converter - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   xliffhelper version           full report
//   xliffhelper version --short   version number only
//
// The full report names the XLIFF version and the table formats this build
// reads and writes, so a translator can check a tool before sending files.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/table"
	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/xliff"
	"github.com/spf13/cobra"
)

// Version is set at release time:
//   go build -ldflags "-X 'github.com/ginjaninja78/XLIFF-CSV-conversion/cmd.Version=1.0.0'"
var Version = "1.0.0"

// shortVersion prints only Version.
var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the converter version and supported formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if shortVersion {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), versionInfo())
	},
}

// versionInfo builds the full version report.
func versionInfo() string {
	var b strings.Builder

	fmt.Fprintf(&b, "xliffhelper %s\n", Version)
	fmt.Fprintf(&b, "  XLIFF:  %s\n", xliff.Version)
	fmt.Fprintf(&b, "  Tables: %s\n", strings.Join(table.Extensions(), ", "))
	fmt.Fprintf(&b, "  Go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if revision := vcsRevision(); revision != "" {
		fmt.Fprintf(&b, "  Commit: %s\n", revision)
	}

	return b.String()
}

// vcsRevision returns the commit the binary was built from, if the Go
// toolchain recorded one.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	revision, modified := "", false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}
	if revision != "" && modified {
		revision += "-dirty"
	}
	return revision
}

func init() {
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
