package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/rovetabs/internal/config"
	"github.com/muurk/rovetabs/internal/ui"
)

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing layout without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the layout file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the layout file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default layout file",
	Example: `  # Write to the platform config directory
  rovetabs config init

  # Write somewhere else
  rovetabs config init --config ./layout.yaml --force`,
	RunE: runConfigInit,
}

func layoutPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := layoutPath()
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.ConfirmOverwrite(path, cmd.InOrStdin(), cmd.OutOrStdout()) {
			return nil
		}
	}

	layout := config.Default()
	if err := layout.Save(path); err != nil {
		p.PrintResult(ui.NewFailureResult("Layout not written", err,
			"Check that the directory is writable",
			"Pass --config to choose another location",
		))
		return fmt.Errorf("failed to write layout: %w", err)
	}

	p.PrintResult(ui.NewSuccessResult("Layout written",
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Tabs", Value: fmt.Sprintf("%d", len(layout.Tabs))},
	))
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective layout as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(cmd)
		if err != nil {
			return err
		}
		data, err := layout.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the layout file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := layoutPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
