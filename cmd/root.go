// Package cmd defines the CLI commands for the fishplants executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fishplants",
		Short: "Web view over the California fish planting schedule",
		Long: `fishplants scrapes the public CDFW fish planting schedule, lets
users filter stocking events by county, and shows a map pin for a
selected water body with county-seat and statewide fallbacks.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; env vars with FISHPLANTS_ prefix also apply)")
	cmd.AddCommand(newServeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
