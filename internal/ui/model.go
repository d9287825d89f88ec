package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/rovetabs/internal/config"
	"github.com/muurk/rovetabs/internal/logging"
	"github.com/muurk/rovetabs/internal/tabs"
)

// SelectionChangedMsg is sent after the group commits a new selection.
type SelectionChangedMsg struct {
	Index int
	Label string
}

// TabClickMsg activates a tab by index as a pointer click on it would.
type TabClickMsg struct {
	Index int
}

// TabDisabledMsg enables or disables a tab at runtime.
type TabDisabledMsg struct {
	Index    int
	Disabled bool
}

// navKeyMap holds the keys that belong to the surrounding screen rather
// than to the tab list.
type navKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultNavKeyMap() navKeyMap {
	return navKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next region"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous region"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys combines the tab list and screen bindings for the help view.
type helpKeys struct {
	tabs tabs.KeyMap
	nav  navKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.tabs.ShortHelp(), h.nav.Next, h.nav.Help, h.nav.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.tabs.FullHelp(), []key.Binding{h.nav.Next, h.nav.Prev, h.nav.Help, h.nav.Quit})
}

// changeQueue collects committed selections between Update calls.
type changeQueue struct {
	indexes []int
}

func (q *changeQueue) push(index int) {
	q.indexes = append(q.indexes, index)
}

// TabsModel is the Bubble Tea model of a tabs widget built from a layout.
type TabsModel struct {
	group    *tabs.Group
	list     *tabs.List
	tabs     []*tabs.Tab
	panels   *tabs.Panels
	labels   []string
	contents []string
	title    string

	keys     tabs.KeyMap
	nav      navKeyMap
	help     help.Model
	viewport viewport.Model
	styles   Styles

	region  Region
	width   int
	height  int
	shown   int
	changes *changeQueue
}

// NewTabsModel builds the widget described by layout.
func NewTabsModel(layout *config.Layout) (TabsModel, error) {
	cfg, err := layout.GroupConfig()
	if err != nil {
		return TabsModel{}, err
	}

	q := &changeQueue{}
	g := tabs.New(cfg, tabs.WithLogger(logging.GetLogger()), tabs.WithOnChange(q.push))

	list, err := tabs.NewList(g)
	if err != nil {
		return TabsModel{}, err
	}
	panels, err := tabs.NewPanels(g)
	if err != nil {
		return TabsModel{}, err
	}

	m := TabsModel{
		group:    g,
		list:     list,
		panels:   panels,
		title:    layout.Title,
		keys:     tabs.DefaultKeyMap(),
		nav:      defaultNavKeyMap(),
		help:     help.New(),
		styles:   NewStyles(layout.Theme),
		region:   RegionNone,
		shown:    -1,
		changes:  q,
		labels:   make([]string, 0, len(layout.Tabs)),
		contents: make([]string, 0, len(layout.Tabs)),
	}

	for _, def := range layout.Tabs {
		tab, err := tabs.NewTab(g, def.Disabled)
		if err != nil {
			return TabsModel{}, err
		}
		tab.Pair(panels.Add())
		m.tabs = append(m.tabs, tab)
		m.labels = append(m.labels, def.Label)
		m.contents = append(m.contents, def.Content)
	}
	g.Init()

	m.width, m.height = GetTerminalSize()
	m.viewport = viewport.New(m.width, 5)
	m.resize()
	m.syncPanel()
	return m, nil
}

// Group returns the navigation state machine behind the model.
func (m TabsModel) Group() *tabs.Group { return m.group }

// Region returns the focus ring position.
func (m TabsModel) Region() Region { return m.region }

// Labels returns the tab labels in order.
func (m TabsModel) Labels() []string { return m.labels }

// Contents returns the panel contents in order.
func (m TabsModel) Contents() []string { return m.contents }

// Styles returns the styles derived from the layout theme.
func (m TabsModel) Styles() Styles { return m.styles }

// Init implements tea.Model
func (m TabsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

	case tea.KeyMsg:
		if key.Matches(msg, m.nav.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case TabClickMsg:
		m.activate(msg.Index)

	case TabDisabledMsg:
		if msg.Index >= 0 && msg.Index < len(m.tabs) {
			m.tabs[msg.Index].SetDisabled(msg.Disabled)
		}
	}

	m.syncPanel()
	return m, tea.Batch(cmd, m.drainChanges())
}

func (m *TabsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.nav.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return nil
	case key.Matches(msg, m.nav.Next):
		m.moveRing(1)
		return nil
	case key.Matches(msg, m.nav.Prev):
		m.moveRing(-1)
		return nil
	}

	switch m.region {
	case RegionList:
		in, ok := m.keys.Intent(msg)
		if !ok {
			logging.LogKey(msg.String(), "", false)
			return nil
		}
		tr := m.group.Handle(in)
		logging.LogKey(msg.String(), in.String(), !tr.NoOp())
	case RegionPanel:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *TabsModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	ox, oy := m.listOrigin()
	_, zones := renderTabList(m.group.Snapshot(), m.labels, m.styles)
	index := hitTest(zones, msg.X-ox, msg.Y-oy)
	logging.LogClick(msg.X, msg.Y, index)
	if index >= 0 {
		m.activate(index)
	}
}

// activate commits tab i. An enabled target also takes focus, which puts
// the focus ring on the list.
func (m *TabsModel) activate(i int) {
	tr := m.group.Handle(tabs.Activate(i))
	if tr.Focus == i && m.region != RegionList {
		logging.LogFocusRing(m.region.String(), RegionList.String())
		m.region = RegionList
	}
}

var ring = []Region{RegionList, RegionPanel, RegionAfter}

// moveRing advances the focus ring by dir (+1 for tab, -1 for shift+tab).
func (m *TabsModel) moveRing(dir int) {
	next := RegionList
	if dir < 0 {
		next = RegionAfter
	}
	for i, r := range ring {
		if r == m.region {
			next = ring[(i+dir+len(ring))%len(ring)]
			break
		}
	}
	m.focusRegion(next)
}

func (m *TabsModel) focusRegion(r Region) {
	prev := m.region
	if r == prev {
		return
	}
	if prev == RegionList {
		m.group.Handle(tabs.Blur())
	}
	if r == RegionList {
		m.group.Handle(tabs.FocusEnter())
	}
	m.region = r
	logging.LogFocusRing(prev.String(), r.String())
}

// syncPanel loads the selected panel into the viewport when the selection
// has changed.
func (m *TabsModel) syncPanel() {
	sel := m.panels.SelectedIndex()
	if sel == m.shown {
		return
	}
	m.shown = sel
	content := ""
	if sel >= 0 && sel < len(m.contents) {
		content = m.contents[sel]
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m *TabsModel) drainChanges() tea.Cmd {
	if len(m.changes.indexes) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.changes.indexes))
	for _, index := range m.changes.indexes {
		msg := SelectionChangedMsg{Index: index, Label: labelAt(m.labels, index)}
		logging.LogSelectionChange(msg.Index, msg.Label)
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.changes.indexes = nil
	return tea.Batch(cmds...)
}

// listOrigin is the screen cell of the tab list's top left corner.
func (m TabsModel) listOrigin() (int, int) {
	if m.title == "" {
		return 0, 0
	}
	return 0, lipgloss.Height(m.renderTitle())
}

func (m TabsModel) renderTitle() string {
	return m.styles.Title.Render(m.title)
}

func (m *TabsModel) resize() {
	st := m.group.Snapshot()
	list, _ := renderTabList(st, m.labels, m.styles)

	chrome := lipgloss.Height(m.renderFooter()) + 2 + 1 // panel border, status line
	if m.title != "" {
		chrome += lipgloss.Height(m.renderTitle())
	}

	if st.Orientation == tabs.Vertical {
		m.viewport.Width = m.width - lipgloss.Width(list) - 4
		m.viewport.Height = m.height - chrome
	} else {
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - chrome - lipgloss.Height(list)
	}
	if m.viewport.Width < 10 {
		m.viewport.Width = 10
	}
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

func (m TabsModel) renderFooter() string {
	keys := helpKeys{tabs: m.keys.ForGroup(m.group), nav: m.nav}
	return m.styles.Help.Render(m.help.View(keys))
}

// View implements tea.Model
func (m TabsModel) View() string {
	st := m.group.Snapshot()
	list, _ := renderTabList(st, m.labels, m.styles)

	panelStyle := m.styles.Panel
	if m.region == RegionPanel {
		panelStyle = m.styles.FocusedPanel
	}
	panel := panelStyle.Render(m.viewport.View())

	var body string
	if m.list.Orientation() == tabs.Vertical {
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, panel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, list, panel)
	}

	afterStyle := m.styles.After
	if m.region == RegionAfter {
		afterStyle = m.styles.FocusedAfter
	}
	status := m.styles.StatusLine.Render(DescribeState(st, m.labels)) + "  " + afterStyle.Render("[ done ]")

	var sections []string
	if m.title != "" {
		sections = append(sections, m.renderTitle())
	}
	sections = append(sections, body, status, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
