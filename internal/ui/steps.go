package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxInputLen is the column width reserved for the input name.
const maxInputLen = 12

// RenderSteps renders replay steps as a numbered list with a status marker
// per step.
func RenderSteps(steps []ReplayStep, labels []string) string {
	lines := make([]string, len(steps))
	for i, step := range steps {
		lines[i] = renderStepLine(step, len(steps), labels)
	}
	return strings.Join(lines, "\n")
}

// renderStepLine renders a single step line
func renderStepLine(step ReplayStep, total int, labels []string) string {
	prefix := fmt.Sprintf("  [%d/%d]", step.Number, total)

	var marker, note string
	var style lipgloss.Style
	switch {
	case step.Changed:
		marker, style = StepMarkerChanged, StepChangedStyle
		note = "selected " + labelAt(labels, step.State.SelectedIndex)
	case step.Moved:
		marker, style = StepMarkerMoved, StepMovedStyle
		note = "focus " + step.Region.String()
		if step.State.FocusIndex >= 0 {
			note = "focus " + labelAt(labels, step.State.FocusIndex)
		}
	default:
		marker, style = StepMarkerIgnored, StepIgnoredStyle
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(" ")
	b.WriteString(style.Render(step.Input))

	padding := maxInputLen - lipgloss.Width(step.Input)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if note != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + note + ")"))
	}
	return b.String()
}
