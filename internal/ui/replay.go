package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/rovetabs/internal/logging"
	"github.com/muurk/rovetabs/internal/tabs"
)

// ReplayInput is one parsed entry of a replay script.
type ReplayInput struct {
	Name string
	Msg  tea.Msg
}

// ReplayStep records the effect of one ReplayInput.
type ReplayStep struct {
	Number  int
	Input   string
	Region  Region
	State   tabs.State
	Changed bool // The selection was committed to a new tab
	Moved   bool // Focus or the focus ring moved without a commit
}

var replayKeys = map[string]tea.KeyType{
	"right":     tea.KeyRight,
	"left":      tea.KeyLeft,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"pgdn":      tea.KeyPgDown,
	"enter":     tea.KeyEnter,
	"space":     tea.KeySpace,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
}

// ParseScript parses a replay script: key names separated by commas or
// spaces. Besides the keys the tab list understands, "tab" and "shift+tab"
// move the focus ring, "click:N" clicks tab N and "disable:N" / "enable:N"
// toggle tab N.
func ParseScript(script string) ([]ReplayInput, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	inputs := make([]ReplayInput, 0, len(fields))
	for _, field := range fields {
		name := strings.ToLower(field)
		if kt, ok := replayKeys[name]; ok {
			inputs = append(inputs, ReplayInput{Name: name, Msg: tea.KeyMsg{Type: kt}})
			continue
		}

		verb, arg, found := strings.Cut(name, ":")
		if !found {
			return nil, fmt.Errorf("unknown key %q in replay script", field)
		}
		index, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid tab index in %q: %w", field, err)
		}

		switch verb {
		case "click":
			inputs = append(inputs, ReplayInput{Name: name, Msg: TabClickMsg{Index: index}})
		case "disable", "enable":
			inputs = append(inputs, ReplayInput{Name: name, Msg: TabDisabledMsg{Index: index, Disabled: verb == "disable"}})
		default:
			return nil, fmt.Errorf("unknown action %q in replay script", field)
		}
	}
	return inputs, nil
}

// Replay feeds inputs through the model in order and records each step.
// Commands returned by Update are discarded.
func Replay(m TabsModel, inputs []ReplayInput) (TabsModel, []ReplayStep) {
	steps := make([]ReplayStep, 0, len(inputs))
	for i, in := range inputs {
		before := m.group.Snapshot()
		beforeRegion := m.region

		next, _ := m.Update(in.Msg)
		m = next.(TabsModel)

		after := m.group.Snapshot()
		step := ReplayStep{
			Number:  i + 1,
			Input:   in.Name,
			Region:  m.region,
			State:   after,
			Changed: after.SelectedIndex != before.SelectedIndex,
		}
		step.Moved = !step.Changed && (after.FocusIndex != before.FocusIndex || m.region != beforeRegion)
		logging.Debug("Replay step",
			zap.Int("step", step.Number),
			zap.String("input", in.Name),
			zap.Bool("changed", step.Changed),
		)
		steps = append(steps, step)
	}
	return m, steps
}
