// Package main is the CLI entry point for bashium.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/bashium/pkg/launcher"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "bashium [launcher]",
		Short: "Hardware-aware launcher for post-install scripts",
		Long: `bashium probes the machine for Wi-Fi, Bluetooth and NVIDIA hardware and
for non-free APT sources, then offers the matching setup scripts in a menu.
The chosen script runs in a new terminal window.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: launcher.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runMenu(cmd, opts, name)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)
	rootCmd.Version = versionString()

	rootCmd.AddCommand(
		newProbeCmd(opts),
		newListCmd(opts),
		newRunCmd(opts),
		newPaletteCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bashium version %s\n", versionString())
		},
	}
}
