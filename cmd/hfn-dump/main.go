// Hfn-dump is an inspection utility for High Flow NEXT protocol frames.
//
// It decodes captured frames (sensor values, settings, strings) into a
// readable report or YAML, computes frame checksums, and prints the field
// layout of the sensor values frame. Frames are read from files or passed
// as hex strings; this tool never talks to the device itself.
//
// Usage:
//
//	hfn-dump [command] [flags]
//
// See 'hfn-dump --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bergmann89/HighFlowNext/internal/logging"
	"github.com/Bergmann89/HighFlowNext/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hfn-dump",
	Short: "High Flow NEXT Frame Inspection Utility",
	Long: `A standalone utility for inspecting High Flow NEXT protocol frames.

Decodes sensor values, settings and strings frames captured from the
device into a readable report or YAML, verifies checksums, and prints
the sensor frame field layout.

Set HFN_LOG_LEVEL=debug for hex dumps of the frames being decoded.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show help when no subcommand provided
		return cmd.Help()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hfn-dump %s (commit: %s)\n", version.Version, version.Commit)
	},
}
