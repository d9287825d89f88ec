// Rovetabs is a terminal tabs widget driven by a roving-focus state machine.
//
// It loads a YAML layout describing the tabs, then either runs the widget
// interactively or replays a scripted sequence of keys and prints the
// resulting states.
//
// Usage:
//
//	rovetabs [command] [flags]
//
// Running without arguments launches the interactive widget.
// See 'rovetabs --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/rovetabs/internal/logging"
	"github.com/muurk/rovetabs/internal/version"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rovetabs",
	Short: "Keyboard-navigable tabs for the terminal",
	Long: `Rovetabs renders a tab list and its panels in the terminal.

Arrow keys move between tabs along the list's orientation, Home/End jump to
the first and last enabled tab, and disabled tabs are skipped. In manual
activation mode the arrows only move focus and Enter or Space selects.

If no command is specified, the interactive widget launches automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeToFile(logLevel, logFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the widget when no subcommand provided
		return runInteractive(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Layout file (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file; defaults to $"+logging.LogFileEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rovetabs %s\n", version.Full())
	},
}
