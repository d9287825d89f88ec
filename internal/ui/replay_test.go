package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/rovetabs/internal/tabs"
)

func TestParseScript(t *testing.T) {
	inputs, err := ParseScript("tab, Right,right  end\nshift+tab,click:2,disable:1,enable:1,space,pgdn")
	require.NoError(t, err)

	var names []string
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	assert.Equal(t, []string{"tab", "right", "right", "end", "shift+tab", "click:2", "disable:1", "enable:1", "space", "pgdn"}, names)

	assert.Equal(t, tea.KeyMsg{Type: tea.KeyTab}, inputs[0].Msg)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyShiftTab}, inputs[4].Msg)
	assert.Equal(t, TabClickMsg{Index: 2}, inputs[5].Msg)
	assert.Equal(t, TabDisabledMsg{Index: 1, Disabled: true}, inputs[6].Msg)
	assert.Equal(t, TabDisabledMsg{Index: 1, Disabled: false}, inputs[7].Msg)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeySpace}, inputs[8].Msg)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyPgDown}, inputs[9].Msg)
}

func TestParseScript_Errors(t *testing.T) {
	for _, script := range []string{"jump", "click:x", "poke:1", "q"} {
		_, err := ParseScript(script)
		assert.Error(t, err, script)
	}

	inputs, err := ParseScript("  ,, ")
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestReplay_Auto(t *testing.T) {
	m := newTestModel(t, tabs.Auto, tabs.Horizontal)
	inputs, err := ParseScript("right,tab,right,right,left,home,tab")
	require.NoError(t, err)

	m, steps := Replay(m, inputs)
	require.Len(t, steps, 7)

	type outcome struct {
		changed, moved bool
		selected       int
	}
	want := []outcome{
		{false, false, 0}, // right before focus enters the list
		{false, true, 0},  // tab into the list
		{true, false, 1},
		{true, false, 3}, // skips disabled Archive
		{true, false, 1},
		{true, false, 0},
		{false, true, 0}, // tab to the panel
	}
	for i, w := range want {
		assert.Equal(t, w.changed, steps[i].Changed, "step %d changed", i+1)
		assert.Equal(t, w.moved, steps[i].Moved, "step %d moved", i+1)
		assert.Equal(t, w.selected, steps[i].State.SelectedIndex, "step %d selected", i+1)
		assert.Equal(t, i+1, steps[i].Number)
	}
	assert.Equal(t, RegionPanel, m.Region())
}

func TestReplay_Manual(t *testing.T) {
	m := newTestModel(t, tabs.Manual, tabs.Horizontal)
	inputs, err := ParseScript("tab,right,right,enter,disable:3")
	require.NoError(t, err)

	m, steps := Replay(m, inputs)
	require.Len(t, steps, 5)

	assert.True(t, steps[1].Moved)
	assert.Equal(t, 1, steps[1].State.FocusIndex)
	assert.Equal(t, 0, steps[1].State.SelectedIndex)

	assert.Equal(t, 3, steps[2].State.FocusIndex)
	assert.True(t, steps[3].Changed)
	assert.Equal(t, 3, steps[3].State.SelectedIndex)

	assert.True(t, steps[4].Changed, "disabling the selected tab moves the selection")
	assert.Equal(t, 0, m.Group().SelectedIndex(), "forward search wraps to the first tab")
}

func TestRenderSteps(t *testing.T) {
	m := newTestModel(t, tabs.Manual, tabs.Horizontal)
	inputs, err := ParseScript("tab,right,enter,left")
	require.NoError(t, err)
	_, steps := Replay(m, inputs)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSteps(steps, m.Labels())
	out := buf.String()

	assert.Contains(t, out, "[1/4] tab")
	assert.Contains(t, out, "(focus Overview)")
	assert.Contains(t, out, "(focus Activity)")
	assert.Contains(t, out, StepMarkerChanged+"  (selected Activity)")
	assert.Contains(t, out, "[4/4] left")
}
