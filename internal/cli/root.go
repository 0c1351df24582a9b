// Package cli wires the fleetdeck commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetdeck/fleetdeck/pkg/sshutil"
)

// Global flags
var cfgFlag string

// rootCmd is the base command for the fleetdeck CLI.
var rootCmd = &cobra.Command{
	Use:   "fleetdeck",
	Short: "Operator console for a fleet of remote machines",
	Long: `fleetdeck is the operator console for a fleet of remote machines.

It checks which hosts are reachable, opens SSH terminal sessions,
runs remote diagnostics, and powers machines down — all driven by a
.fleetdeck.yaml host inventory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFlag, "config", "", "path to config file")
}

// Config returns the --config flag value.
func Config() string {
	return cfgFlag
}

// Execute runs the root command and exits non-zero on error. The shared
// SSH agent connection is closed before exiting either way.
func Execute() {
	err := rootCmd.Execute()
	sshutil.CloseAgent()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
