package tabs

// List is the container of the tab buttons.
type List struct {
	group *Group
}

// NewList binds a tab list to its group.
func NewList(g *Group) (*List, error) {
	if g == nil {
		return nil, &MissingParentError{Component: ComponentList}
	}
	return &List{group: g}, nil
}

// MustNewList is NewList that panics on a missing group.
func MustNewList(g *Group) *List {
	l, err := NewList(g)
	if err != nil {
		panic(err)
	}
	return l
}

// SelectedIndex returns the group's selected index.
func (l *List) SelectedIndex() int { return l.group.SelectedIndex() }

// Orientation returns the group's navigation axis.
func (l *List) Orientation() Orientation { return l.group.Orientation() }

// Tab is one tab button. It registers with its group on construction.
type Tab struct {
	group  *Group
	handle Handle
	panel  *Panel
	closed bool
}

// NewTab registers a tab with g.
func NewTab(g *Group, disabled bool) (*Tab, error) {
	if g == nil {
		return nil, &MissingParentError{Component: ComponentTab}
	}
	return &Tab{group: g, handle: g.Register(disabled)}, nil
}

// MustNewTab is NewTab that panics on a missing group.
func MustNewTab(g *Group, disabled bool) *Tab {
	t, err := NewTab(g, disabled)
	if err != nil {
		panic(err)
	}
	return t
}

// Handle returns the stable identity of the tab.
func (t *Tab) Handle() Handle { return t.handle }

// Index returns the tab's current position, or -1 once closed.
func (t *Tab) Index() int {
	if t.closed {
		return -1
	}
	i, _ := t.group.IndexOf(t.handle)
	return i
}

// Selected reports whether this tab holds the selection.
func (t *Tab) Selected() bool {
	i := t.Index()
	return i >= 0 && i == t.group.SelectedIndex()
}

// Focused reports whether this tab holds the roving focus.
func (t *Tab) Focused() bool {
	i := t.Index()
	return i >= 0 && i == t.group.FocusIndex()
}

// Disabled reports whether the tab is disabled.
func (t *Tab) Disabled() bool {
	i := t.Index()
	if i < 0 {
		return true
	}
	return t.group.Items()[i].Disabled
}

// SetDisabled toggles the tab's enabled state.
func (t *Tab) SetDisabled(disabled bool) {
	if t.closed {
		return
	}
	t.group.SetDisabled(t.handle, disabled)
}

// Click activates the tab as a pointer would.
func (t *Tab) Click() Transition {
	return t.group.Handle(Activate(t.Index()))
}

// Focus places focus on the tab.
func (t *Tab) Focus() Transition {
	return t.group.Handle(FocusAt(t.Index()))
}

// Pair ties p to the tab so that closing the tab also closes p.
func (t *Tab) Pair(p *Panel) {
	t.panel = p
}

// Panel returns the panel tied to the tab with Pair, or nil.
func (t *Tab) Panel() *Panel { return t.panel }

// Close unregisters the tab and closes its paired panel. Further calls are
// no-ops.
func (t *Tab) Close() {
	if t.closed {
		return
	}
	t.closed = true
	if t.panel != nil {
		t.panel.Close()
	}
	t.group.Unregister(t.handle)
}

// Panels is the container of the tab panels.
type Panels struct {
	group  *Group
	panels []*Panel
}

// NewPanels binds a panel container to its group.
func NewPanels(g *Group) (*Panels, error) {
	if g == nil {
		return nil, &MissingParentError{Component: ComponentPanels}
	}
	return &Panels{group: g}, nil
}

// MustNewPanels is NewPanels that panics on a missing group.
func MustNewPanels(g *Group) *Panels {
	p, err := NewPanels(g)
	if err != nil {
		panic(err)
	}
	return p
}

// SelectedIndex returns the group's selected index.
func (p *Panels) SelectedIndex() int { return p.group.SelectedIndex() }

// Add creates a panel paired by position with the tab at the same index.
// Positions only stay aligned if every tab close also closes the panel at
// its index; tie the two with Tab.Pair so Tab.Close removes both.
func (p *Panels) Add() *Panel {
	panel := &Panel{group: p.group, owner: p}
	p.panels = append(p.panels, panel)
	return panel
}

// Len returns the number of open panels.
func (p *Panels) Len() int { return len(p.panels) }

// Active returns the panel paired with the selected tab, if any.
func (p *Panels) Active() (*Panel, bool) {
	i := p.group.SelectedIndex()
	if i < 0 || i >= len(p.panels) {
		return nil, false
	}
	return p.panels[i], true
}

// Panel is the content paired by index with one tab.
type Panel struct {
	group *Group
	owner *Panels
}

// NewPanel creates a panel that is not grouped under a Panels container. Its
// index is always -1 unless it is attached through Panels.Add.
func NewPanel(g *Group) (*Panel, error) {
	if g == nil {
		return nil, &MissingParentError{Component: ComponentPanel}
	}
	return &Panel{group: g}, nil
}

// MustNewPanel is NewPanel that panics on a missing group.
func MustNewPanel(g *Group) *Panel {
	p, err := NewPanel(g)
	if err != nil {
		panic(err)
	}
	return p
}

// Index returns the panel's position among its siblings, or -1.
func (p *Panel) Index() int {
	if p.owner == nil {
		return -1
	}
	for i, sib := range p.owner.panels {
		if sib == p {
			return i
		}
	}
	return -1
}

// Selected reports whether the paired tab is selected.
func (p *Panel) Selected() bool {
	i := p.Index()
	return i >= 0 && i == p.group.SelectedIndex()
}

// Close removes the panel from its container.
func (p *Panel) Close() {
	if p.owner == nil {
		return
	}
	if i := p.Index(); i >= 0 {
		p.owner.panels = append(p.owner.panels[:i], p.owner.panels[i+1:]...)
	}
	p.owner = nil
}
