package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/rovetabs/internal/config"
	"github.com/muurk/rovetabs/internal/tabs"
)

func TestRenderPlain(t *testing.T) {
	m := newTestModel(t, tabs.Manual, tabs.Horizontal)
	labels := m.Labels()

	assert.Equal(t, []string{"[Overview]", "Activity", "~Archive~", "Settings"},
		strings.Fields(RenderPlain(m.Group().Snapshot(), labels)))

	m, _ = send(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyRight))
	assert.Equal(t, []string{"[Overview]", ">Activity", "~Archive~", "Settings"},
		strings.Fields(RenderPlain(m.Group().Snapshot(), labels)))

	v := newTestModel(t, tabs.Auto, tabs.Vertical)
	assert.Equal(t, 4, len(strings.Split(RenderPlain(v.Group().Snapshot(), labels), "\n")))
}

func TestDescribeState(t *testing.T) {
	m := newTestModel(t, tabs.Manual, tabs.Horizontal)
	labels := m.Labels()
	assert.Equal(t, "selected 0 (Overview), horizontal/manual", DescribeState(m.Group().Snapshot(), labels))

	m, _ = send(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyEnd))
	assert.Equal(t, "selected 0 (Overview), focus 3, pending 3 (Settings), horizontal/manual",
		DescribeState(m.Group().Snapshot(), labels))

	empty := tabs.New(tabs.Config{})
	assert.Equal(t, "no selection, horizontal/auto", DescribeState(empty.Snapshot(), nil))
}

func TestLabelAtFallback(t *testing.T) {
	assert.Equal(t, "Tab 3", labelAt(nil, 2))
	assert.Equal(t, "b", labelAt([]string{"a", "b"}, 1))
}

func TestHitTest(t *testing.T) {
	zones := []hitZone{
		{index: 0, x0: 0, x1: 10, y0: 0, y1: 3},
		{index: 1, x0: 10, x1: 20, y0: 0, y1: 3},
	}
	assert.Equal(t, 0, hitTest(zones, 0, 0))
	assert.Equal(t, 1, hitTest(zones, 10, 2))
	assert.Equal(t, -1, hitTest(zones, 20, 1), "bounds are half-open")
	assert.Equal(t, -1, hitTest(zones, 5, 3))
}

func TestRenderTabList_Empty(t *testing.T) {
	g := tabs.New(tabs.Config{})
	out, zones := renderTabList(g.Snapshot(), nil, NewStyles(nil))
	assert.Contains(t, out, "no tabs")
	assert.Empty(t, zones)
}

func TestRenderSnapshot(t *testing.T) {
	for _, orientation := range []tabs.Orientation{tabs.Horizontal, tabs.Vertical} {
		t.Run(orientation.String(), func(t *testing.T) {
			m := newTestModel(t, tabs.Auto, orientation)
			out := RenderSnapshot(m.Group().Snapshot(), m.Labels(), m.Contents(), m.Styles(), 80)
			assert.Contains(t, out, "Overview")
			assert.Contains(t, out, "Settings")
			assert.Contains(t, out, "Use the arrow keys")
			assert.Contains(t, out, "selected 0 (Overview)")
		})
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Key replay", "rovetabs replay",
		Param{Key: "Layout", Value: "layout.yaml"},
		Param{Key: "Keys", Value: "right,enter"},
	).SetWidth(60).Render()

	assert.Contains(t, out, "KEY REPLAY")
	assert.Contains(t, out, "rovetabs replay")
	assert.Less(t, strings.Index(out, "Layout:"), strings.Index(out, "Keys:"), "params keep their order")
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Layout written", Param{Key: "Path", Value: "/tmp/layout.yaml"}).SetWidth(60)
	assert.Contains(t, ok.String(), "SUCCESS")
	assert.Contains(t, ok.String(), "/tmp/layout.yaml")

	fail := NewFailureResult("Layout invalid", errors.New("tabs: at least one tab is required"), "Run rovetabs config init").SetWidth(60)
	out := fail.Render()
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "at least one tab")
	assert.Contains(t, out, "Troubleshooting:")

	warn := NewWarningResult("Replay ignored keys").AddDetail("Ignored", "2").SetWidth(60)
	assert.Contains(t, warn.Render(), "WARNING")
	assert.Contains(t, warn.Render(), "Ignored")
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmOverwrite("/tmp/layout.yaml", strings.NewReader(tt.input), &out)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Overwrite?")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(70)
	assert.Equal(t, 70, p.Width())

	m, err := NewTabsModel(config.Default())
	require.NoError(t, err)

	p.PrintHeader("Snapshot", "rovetabs replay")
	p.PrintSnapshot(m)
	p.PrintResult(NewSuccessResult("done"))
	p.Newline()

	out := buf.String()
	assert.Contains(t, out, "SNAPSHOT")
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "done")
}
