package tabs

// ItemState is the per-tab render state.
type ItemState struct {
	Index    int
	Handle   Handle
	Disabled bool
	Selected bool // Index == SelectedIndex
	Focused  bool // Index == FocusIndex
}

// State is a point-in-time copy of a Group. It does not track later changes.
type State struct {
	SelectedIndex int // -1 with no tabs
	FocusIndex    int // -1 when focus is outside the list
	Orientation   Orientation
	Activation    Activation
	Items         []ItemState
}

// Selected reports whether item i is the selected one. Panels use this with
// their own index.
func (s State) Selected(i int) bool {
	return i >= 0 && i == s.SelectedIndex
}

// Pending returns the focused-but-uncommitted tab in manual mode.
func (s State) Pending() (int, bool) {
	if s.Activation != Manual || s.FocusIndex < 0 || s.FocusIndex == s.SelectedIndex {
		return -1, false
	}
	return s.FocusIndex, true
}

// TabStop returns the index that sequential focus navigation lands on.
func (s State) TabStop() int {
	return s.SelectedIndex
}
