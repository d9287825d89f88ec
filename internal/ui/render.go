package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/rovetabs/internal/tabs"
)

// Region is a stop in the model's focus ring.
type Region int

const (
	RegionNone  Region = iota // Focus is outside the widget
	RegionList                // The tab list (roving focus is active)
	RegionPanel               // The selected panel
	RegionAfter               // The element after the widget
)

func (r Region) String() string {
	switch r {
	case RegionNone:
		return "none"
	case RegionList:
		return "list"
	case RegionPanel:
		return "panel"
	case RegionAfter:
		return "after"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// hitZone is the cell rectangle of one rendered tab, relative to the top
// left corner of the tab list. Bounds are half-open.
type hitZone struct {
	index  int
	x0, x1 int
	y0, y1 int
}

func (z hitZone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

func labelAt(labels []string, i int) string {
	if i >= 0 && i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("Tab %d", i+1)
}

func (s Styles) tabStyle(it tabs.ItemState) lipgloss.Style {
	switch {
	case it.Disabled:
		return s.DisabledTab
	case it.Selected && it.Focused:
		return s.SelectedAndFocused()
	case it.Selected:
		return s.SelectedTab
	case it.Focused:
		return s.FocusedTab
	default:
		return s.Tab
	}
}

// renderTabList renders the tabs along the group's axis and returns the hit
// zone of every tab.
func renderTabList(st tabs.State, labels []string, s Styles) (string, []hitZone) {
	if len(st.Items) == 0 {
		return s.StatusLine.Render("(no tabs)"), nil
	}

	cells := make([]string, len(st.Items))
	zones := make([]hitZone, len(st.Items))
	x, y := 0, 0
	for i, it := range st.Items {
		cells[i] = s.tabStyle(it).Render(labelAt(labels, i))
		w, h := lipgloss.Width(cells[i]), lipgloss.Height(cells[i])
		zones[i] = hitZone{index: i, x0: x, x1: x + w, y0: y, y1: y + h}
		if st.Orientation == tabs.Vertical {
			y += h
		} else {
			x += w
		}
	}

	if st.Orientation == tabs.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, cells...), zones
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...), zones
}

// hitTest returns the index of the tab under (x, y), or -1.
func hitTest(zones []hitZone, x, y int) int {
	for _, z := range zones {
		if z.contains(x, y) {
			return z.index
		}
	}
	return -1
}

// DescribeState summarises selection and focus in one line.
func DescribeState(st tabs.State, labels []string) string {
	var b strings.Builder
	if st.SelectedIndex >= 0 {
		fmt.Fprintf(&b, "selected %d (%s)", st.SelectedIndex, labelAt(labels, st.SelectedIndex))
	} else {
		b.WriteString("no selection")
	}
	if st.FocusIndex >= 0 {
		fmt.Fprintf(&b, ", focus %d", st.FocusIndex)
	}
	if i, ok := st.Pending(); ok {
		fmt.Fprintf(&b, ", pending %d (%s)", i, labelAt(labels, i))
	}
	fmt.Fprintf(&b, ", %s/%s", st.Orientation, st.Activation)
	return b.String()
}

// RenderPlain renders the tab list without styling. The selected tab is in
// brackets, disabled tabs are struck with tildes and the focused tab is
// prefixed with ">".
func RenderPlain(st tabs.State, labels []string) string {
	parts := make([]string, len(st.Items))
	for i, it := range st.Items {
		label := labelAt(labels, i)
		switch {
		case it.Selected:
			label = "[" + label + "]"
		case it.Disabled:
			label = "~" + label + "~"
		}
		if it.Focused {
			label = ">" + label
		} else {
			label = " " + label
		}
		parts[i] = label
	}
	sep := " "
	if st.Orientation == tabs.Vertical {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}

// RenderSnapshot renders a static view of the widget: the tab list, the
// selected panel and a status line.
func RenderSnapshot(st tabs.State, labels, contents []string, s Styles, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	list, _ := renderTabList(st, labels, s)

	content := ""
	if st.SelectedIndex >= 0 && st.SelectedIndex < len(contents) {
		content = contents[st.SelectedIndex]
	}

	var body string
	if st.Orientation == tabs.Vertical {
		panelWidth := width - lipgloss.Width(list) - 2
		if panelWidth < 10 {
			panelWidth = 10
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, s.Panel.Width(panelWidth).Render(content))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, list, s.Panel.Width(width-2).Render(content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, s.StatusLine.Render(DescribeState(st, labels)))
}
