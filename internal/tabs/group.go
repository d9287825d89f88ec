package tabs

import (
	"go.uber.org/zap"
)

// Config is the construction-time configuration of a Group.
type Config struct {
	DefaultIndex int         // Resolved once against the registered items; may be out of range
	Orientation  Orientation // Axis of the arrow keys that navigate
	Activation   Activation  // Auto or Manual
}

// Option customises a Group.
type Option func(*Group)

// WithOnChange subscribes fn to committed selection changes.
func WithOnChange(fn func(index int)) Option {
	return func(g *Group) {
		g.notifier.Subscribe(fn)
	}
}

// WithLogger sets the logger used for transition tracing. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Group) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRegistry makes the Group navigate r instead of a private registry.
// Changes made to r directly are reconciled before the next intent is
// handled, or on an explicit Reconcile.
func WithRegistry(r *Registry) Option {
	return func(g *Group) {
		if r != nil {
			g.registry = r
		}
	}
}

// Transition describes the effect of one Intent.
type Transition struct {
	Intent       Intent
	PrevSelected int
	Selected     int
	PrevFocus    int
	Focus        int  // -1 when focus is outside the list
	Changed      bool // Selected differs from PrevSelected; subscribers were notified
	FocusMoved   bool // The collaborator should move input focus to Focus
}

// NoOp reports whether the intent left both selection and focus untouched.
func (t Transition) NoOp() bool {
	return !t.Changed && t.Focus == t.PrevFocus
}

// Group is the navigation state machine of one tabs widget. It owns the
// registry of tabs, the selected index and the roving focus cursor.
type Group struct {
	registry    *Registry
	notifier    Notifier
	logger      *zap.Logger
	defaultIdx  int
	orientation Orientation
	activation  Activation

	resolved bool
	selected int
	focus    int
}

// New creates a Group. The default index is resolved lazily, the first time
// state is read or an intent is handled with at least one item registered.
func New(cfg Config, opts ...Option) *Group {
	g := &Group{
		registry:    NewRegistry(),
		logger:      zap.NewNop(),
		defaultIdx:  cfg.DefaultIndex,
		orientation: cfg.Orientation,
		activation:  cfg.Activation,
		selected:    -1,
		focus:       -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init forces resolution of the default index. It is safe to call repeatedly.
func (g *Group) Init() {
	g.ensureResolved()
}

// Subscribe registers fn for committed selection changes.
func (g *Group) Subscribe(fn func(index int)) (unsubscribe func()) {
	return g.notifier.Subscribe(fn)
}

// Register adds an item at the end of navigation order.
func (g *Group) Register(disabled bool) Handle {
	h := g.registry.Register(disabled)
	g.logger.Debug("tab registered",
		zap.Stringer("handle", h),
		zap.Int("index", g.registry.Len()-1),
		zap.Bool("disabled", disabled),
	)
	return h
}

// Unregister removes an item. Indexes after it shift down; if it held the
// selection, the selection is re-resolved from the vacated index.
func (g *Group) Unregister(h Handle) {
	removed := g.registry.Unregister(h)
	if removed < 0 {
		return
	}
	g.logger.Debug("tab unregistered",
		zap.Stringer("handle", h),
		zap.Int("index", removed),
	)
	if !g.resolved {
		return
	}
	if g.registry.Len() == 0 {
		g.resolved = false
		g.selected = -1
		g.focus = -1
		return
	}

	prev := g.selected
	items := g.registry.Items()

	switch {
	case g.selected == removed:
		g.selected = Resolve(removed, items)
	case g.selected > removed:
		g.selected--
	}

	switch {
	case g.focus == removed:
		g.focus = g.selected
	case g.focus > removed:
		g.focus--
	}

	g.reconcile(prev)
}

// SetDisabled changes the enabled state of an item. Disabling the selected
// item moves the selection forward to the next enabled item.
func (g *Group) SetDisabled(h Handle, disabled bool) {
	if !g.registry.SetDisabled(h, disabled) {
		return
	}
	if !g.resolved {
		return
	}
	g.reconcile(g.selected)
}

// reconcile re-validates selection and focus after a registry mutation and
// notifies if the selected index differs from prev.
func (g *Group) reconcile(prev int) {
	items := g.registry.Items()
	if g.selected < 0 || g.selected >= len(items) || items[g.selected].Disabled {
		g.selected = Resolve(g.selected, items)
	}
	if g.focus >= len(items) || (g.focus >= 0 && items[g.focus].Disabled) {
		g.focus = g.selected
	}
	if g.selected != prev {
		g.logger.Debug("selection reconciled",
			zap.Int("from", prev),
			zap.Int("to", g.selected),
		)
		g.notifier.emit(g.selected)
	}
}

// Reconcile re-validates selection and focus against the registry. Mutations
// made through the Group already reconcile, and Handle reconciles before every
// intent; call it to pick up edits to a registry passed in with WithRegistry
// without waiting for input.
func (g *Group) Reconcile() {
	g.ensureResolved()
	g.sync()
}

// sync brings a resolved group back in line with its registry. A registry
// emptied behind the group's back drops the resolution so the default index
// applies again to the next registered item.
func (g *Group) sync() {
	if !g.resolved {
		return
	}
	if g.registry.Len() == 0 {
		g.resolved = false
		g.selected = -1
		g.focus = -1
		return
	}
	g.reconcile(g.selected)
}

func (g *Group) ensureResolved() {
	if g.resolved || g.registry.Len() == 0 {
		return
	}
	g.selected = Resolve(g.defaultIdx, g.registry.Items())
	g.resolved = true
	g.logger.Debug("default index resolved",
		zap.Int("default_index", g.defaultIdx),
		zap.Int("selected", g.selected),
	)
}

// Handle applies one intent and returns its effect. Invalid targets (disabled
// items, out-of-range indexes, empty or fully disabled lists) are silent no-ops.
func (g *Group) Handle(in Intent) Transition {
	g.ensureResolved()
	g.sync()
	tr := Transition{
		Intent:       in,
		PrevSelected: g.selected,
		PrevFocus:    g.focus,
	}

	items := g.registry.Items()
	if len(items) > 0 {
		g.apply(in, items)
	}

	tr.Selected = g.selected
	tr.Focus = g.focus
	tr.Changed = g.selected != tr.PrevSelected
	tr.FocusMoved = g.focus >= 0 && g.focus != tr.PrevFocus

	g.logger.Debug("tabs intent",
		zap.Stringer("intent", in),
		zap.Int("selected", tr.Selected),
		zap.Int("focus", tr.Focus),
		zap.Bool("changed", tr.Changed),
	)
	if tr.Changed {
		g.notifier.emit(g.selected)
	}
	return tr
}

func (g *Group) apply(in Intent, items []Item) {
	origin := g.focus
	if origin < 0 {
		origin = g.selected
	}

	switch in.Kind {
	case IntentNext:
		if in.Axis != g.orientation {
			return
		}
		if i, ok := NextEnabled(origin, items); ok {
			g.moveFocus(i)
		}

	case IntentPrev:
		if in.Axis != g.orientation {
			return
		}
		if i, ok := PrevEnabled(origin, items); ok {
			g.moveFocus(i)
		}

	case IntentFirst:
		if i, ok := FirstEnabled(items); ok {
			g.moveFocus(i)
		}

	case IntentLast:
		if i, ok := LastEnabled(items); ok {
			g.moveFocus(i)
		}

	case IntentConfirm:
		if g.activation == Manual && enabledAt(g.focus, items) {
			g.selected = g.focus
		}

	case IntentActivate:
		if enabledAt(in.Index, items) {
			g.focus = in.Index
			g.selected = in.Index
		}

	case IntentFocus:
		if enabledAt(in.Index, items) {
			g.moveFocus(in.Index)
		}

	case IntentFocusEnter:
		g.focus = g.selected

	case IntentBlur:
		g.focus = -1
	}
}

func (g *Group) moveFocus(i int) {
	g.focus = i
	if g.activation.commitsOnFocus() {
		g.selected = i
	}
}

func enabledAt(i int, items []Item) bool {
	return i >= 0 && i < len(items) && !items[i].Disabled
}

// Select commits item i as a pointer click would.
func (g *Group) Select(i int) Transition {
	return g.Handle(Activate(i))
}

// SetActivation switches the activation mode. Any pending focus is dropped
// back onto the selected item.
func (g *Group) SetActivation(a Activation) {
	if g.activation == a {
		return
	}
	g.activation = a
	if g.focus >= 0 {
		g.focus = g.selected
	}
}

// SetOrientation changes the navigation axis.
func (g *Group) SetOrientation(o Orientation) {
	g.orientation = o
}

// Activation returns the current activation mode.
func (g *Group) Activation() Activation { return g.activation }

// Orientation returns the current navigation axis.
func (g *Group) Orientation() Orientation { return g.orientation }

// Len returns the number of registered tabs.
func (g *Group) Len() int { return g.registry.Len() }

// Items returns the registered tabs in navigation order.
func (g *Group) Items() []Item { return g.registry.Items() }

// IndexOf returns the current index of h.
func (g *Group) IndexOf(h Handle) (int, bool) { return g.registry.IndexOf(h) }

// SelectedIndex returns the committed selection, or -1 with no tabs.
func (g *Group) SelectedIndex() int {
	g.ensureResolved()
	return g.selected
}

// FocusIndex returns the tab holding focus, or -1 if focus is outside the list.
func (g *Group) FocusIndex() int {
	g.ensureResolved()
	return g.focus
}

// PendingIndex returns the focused-but-uncommitted tab in manual mode.
func (g *Group) PendingIndex() (int, bool) {
	g.ensureResolved()
	if g.activation != Manual || g.focus < 0 || g.focus == g.selected {
		return -1, false
	}
	return g.focus, true
}

// Snapshot returns an immutable view of the current state for rendering.
func (g *Group) Snapshot() State {
	g.ensureResolved()
	items := g.registry.Items()
	st := State{
		SelectedIndex: g.selected,
		FocusIndex:    g.focus,
		Orientation:   g.orientation,
		Activation:    g.activation,
		Items:         make([]ItemState, len(items)),
	}
	for i, it := range items {
		st.Items[i] = ItemState{
			Index:    it.Index,
			Handle:   it.Handle,
			Disabled: it.Disabled,
			Selected: i == g.selected,
			Focused:  i == g.focus,
		}
	}
	return st
}
