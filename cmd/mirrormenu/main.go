// Mirrormenu is an interactive terminal launcher for Android screen
// mirroring.
//
// It manages named preset bundles of mirroring options, lets the user pick
// presets and devices from arrow-key menus, and supervises the external
// mirroring process. Recordings can optionally be converted to MP4 when the
// session ends.
//
// Usage:
//
//	mirrormenu [preset] [flags]
//
// Running without arguments opens the interactive menu. Naming a preset
// launches it directly; a close-enough name is offered for confirmation.
// See 'mirrormenu --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/mirrormenu/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mirrormenu [preset]",
	Short: "Interactive Android screen mirroring launcher",
	Long: `An interactive terminal front-end for Android screen mirroring.

Presets bundle mirroring options (codec, bitrate, resolution, buffering)
under a name. The menu lists them for launching, editing, reordering and
searching; a preset named on the command line is launched directly.

Requires adb and scrcpy in PATH.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	Example: `  # Open the interactive menu
  mirrormenu

  # Launch a preset directly
  mirrormenu Gaming

  # Record the session, keeping the process output in the log file
  mirrormenu Gaming --record --stream`,
	RunE:          runLauncher,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mirrormenu %s\n", version.Full())
	},
}
