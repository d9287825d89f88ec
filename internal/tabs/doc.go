// Package tabs implements the selection and roving-focus state machine behind
// a tabbed interface.
//
// The package knows nothing about rendering. A rendering collaborator (see
// internal/ui) registers one item per tab, forwards keyboard and pointer
// input as Intents, and re-renders from the State snapshot after each
// Transition.
//
// # Architecture
//
//	┌─────────────────┐
//	│ KeyMap          │  tea.KeyMsg -> Intent (orientation-aware)
//	└────────┬────────┘
//	         │
//	         v
//	┌─────────────────┐
//	│ Group           │  selected index, focus cursor, activation policy
//	└────────┬────────┘
//	         │
//	         v
//	┌─────────────────┐
//	│ Resolve         │  clamps and skips disabled items
//	└────────┬────────┘
//	         │
//	         v
//	┌─────────────────┐
//	│ Notifier        │  one callback per committed change
//	└─────────────────┘
//
// # Activation
//
// In Auto mode every focus move commits the selection. In Manual mode arrow
// keys only move the focus cursor; Enter or Space commits the focused tab.
// Pointer activation commits immediately in both modes.
//
// # Usage
//
//	g := tabs.New(tabs.Config{DefaultIndex: 1, Activation: tabs.Manual},
//	    tabs.WithOnChange(func(i int) { fmt.Println("selected", i) }))
//
//	list := tabs.MustNewList(g)
//	for i := 0; i < 3; i++ {
//	    tabs.MustNewTab(g, false)
//	}
//
//	tr := g.Handle(tabs.Next(tabs.Horizontal))
//	if tr.FocusMoved {
//	    // move terminal focus to tr.Focus
//	}
//	_ = list.SelectedIndex()
//
// # Concurrency
//
// A Group is not safe for concurrent use. Bubble Tea serialises Update calls,
// which is the expected driver.
package tabs
