package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/rovetabs/internal/config"
	"github.com/muurk/rovetabs/internal/tabs"
	"github.com/muurk/rovetabs/internal/ui"
)

// Layout override flags shared by run and replay
var (
	manual       bool
	vertical     bool
	defaultIndex int
)

// Replay flags
var (
	replayKeys  string
	replayPlain bool
)

func init() {
	for _, c := range []*cobra.Command{runCmd, replayCmd, rootCmd} {
		c.Flags().BoolVar(&manual, "manual", false, "Use manual activation (Enter/Space selects)")
		c.Flags().BoolVar(&vertical, "vertical", false, "Lay tabs out vertically (Up/Down navigate)")
		c.Flags().IntVar(&defaultIndex, "default-index", 0, "Initially selected tab (clamped, disabled tabs skipped)")
	}

	replayCmd.Flags().StringVarP(&replayKeys, "keys", "k", "", "Comma separated keys, e.g. \"tab,right,enter,click:2\"")
	replayCmd.Flags().BoolVar(&replayPlain, "plain", false, "Print unstyled text, one state per line")
	_ = replayCmd.MarkFlagRequired("keys")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadLayout reads the layout named by --config, or the default one, and
// applies the override flags that were set on cmd.
func loadLayout(cmd *cobra.Command) (*config.Layout, error) {
	var (
		layout *config.Layout
		err    error
	)
	if configPath != "" {
		layout, err = config.Load(configPath)
	} else {
		layout, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("manual") {
		layout.Activation = tabs.Auto
		if manual {
			layout.Activation = tabs.Manual
		}
	}
	if flags.Changed("vertical") {
		layout.Orientation = tabs.Horizontal
		if vertical {
			layout.Orientation = tabs.Vertical
		}
	}
	if flags.Changed("default-index") {
		layout.DefaultIndex = defaultIndex
	}
	return layout, nil
}

// runCmd launches the interactive widget
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive tabs widget",
	Long: `Launch the tabs widget full screen.

Tab and Shift+Tab move focus between the tab list, the selected panel and
the "done" marker. Arrow keys, Home/End and PgUp/PgDn navigate the list
while it has focus. Tabs can also be clicked. Press q to quit.`,
	Example: `  # Default layout
  rovetabs run

  # Manual activation on a vertical list, logging to a file
  rovetabs run --manual --vertical --log-level debug --log-file rovetabs.log`,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the interactive widget needs a terminal; use 'rovetabs replay' for scripted input")
	}

	layout, err := loadLayout(cmd)
	if err != nil {
		return err
	}
	model, err := ui.NewTabsModel(layout)
	if err != nil {
		return err
	}

	final, err := ui.RunInteractive(model, nil, nil)
	if err != nil {
		return err
	}

	st := final.Group().Snapshot()
	fmt.Fprintln(cmd.OutOrStdout(), ui.DescribeState(st, final.Labels()))
	return nil
}

// replayCmd feeds scripted keys through the widget
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a key sequence and print each resulting state",
	Long: `Replay feeds a scripted sequence of inputs through the same model the
interactive widget uses, without a terminal.

Inputs: right, left, up, down, home, end, pgup, pgdown, enter, space, tab,
shift+tab, click:N, disable:N and enable:N. Note that arrow keys only reach
the tab list after a "tab" has moved focus into it.`,
	Example: `  # Walk right through the default layout
  rovetabs replay --keys "tab,right,right,right"

  # Manual mode: move focus, then commit
  rovetabs replay --manual --keys "tab,end,enter" --plain`,
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	inputs, err := ui.ParseScript(replayKeys)
	if err != nil {
		return err
	}

	layout, err := loadLayout(cmd)
	if err != nil {
		return err
	}
	model, err := ui.NewTabsModel(layout)
	if err != nil {
		return err
	}

	start := model.Group().Snapshot()
	final, steps := ui.Replay(model, inputs)
	labels := final.Labels()

	out := cmd.OutOrStdout()
	if replayPlain {
		fmt.Fprintf(out, "%-12s %s  | %s\n", "start", ui.RenderPlain(start, labels), ui.DescribeState(start, labels))
		for _, step := range steps {
			fmt.Fprintf(out, "%-12s %s  | %s\n", step.Input, ui.RenderPlain(step.State, labels), ui.DescribeState(step.State, labels))
		}
		return nil
	}

	p := ui.NewPrinter(out)
	p.PrintHeader("Key replay", "rovetabs replay",
		ui.Param{Key: "Keys", Value: strings.Join(inputNames(inputs), ",")},
		ui.Param{Key: "Mode", Value: layout.Orientation.String() + "/" + layout.Activation.String()},
	)
	p.PrintSteps(steps, labels)
	p.Newline()
	p.PrintSnapshot(final)
	return nil
}

func inputNames(inputs []ui.ReplayInput) []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}
	return names
}
