// Package ui renders tabs widgets in the terminal.
//
// The package uses Bubble Tea and Lipgloss in two ways:
//
//   - TabsModel: an interactive tea.Model that drives a tabs.Group from key
//     presses and mouse clicks and shows the selected panel in a viewport.
//   - Printer: "run once and exit" output for the non-interactive commands
//     (headers, result boxes, replay step lists and static snapshots).
//
// # Focus Ring
//
// Tab and shift+tab cycle focus through three regions: the tab list, the
// selected panel and a "done" target after the widget. Entering the list
// focuses the selected tab; leaving it blurs the group so that the next
// entry starts from the selection again. Arrow keys only reach the group
// while the list region has focus.
//
// # Mouse
//
// Each rendered tab records a hit zone. A left click inside a zone
// activates that tab, which both commits and focuses it.
//
// # Replay
//
// ParseScript and Replay feed a scripted sequence of keys through the same
// model without a terminal:
//
//	inputs, err := ui.ParseScript("tab, right, right, enter, click:0")
//	if err != nil {
//	    return err
//	}
//	model, steps := ui.Replay(model, inputs)
//
// # Logging Integration
//
// Logging is controlled via the ROVETABS_LOG_LEVEL environment variable.
// The interactive program owns the terminal, so logs should be sent to a
// file with ROVETABS_LOG_FILE or --log-file.
package ui
