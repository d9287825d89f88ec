package tabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to tab intents.
type KeyMap struct {
	Right   key.Binding
	Left    key.Binding
	Down    key.Binding
	Up      key.Binding
	First   key.Binding
	Last    key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the standard tablist bindings: arrows, Home/PageUp,
// End/PageDown, Enter and Space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next tab"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous tab"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous tab"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "pgup"),
			key.WithHelp("home/pgup", "first tab"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "pgdown"),
			key.WithHelp("end/pgdn", "last tab"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
	}
}

// Intent translates a key press. The axis is taken from the key, not from
// the group, so a Right press on a vertical list reaches the group and is
// discarded there.
func (k KeyMap) Intent(msg tea.KeyMsg) (Intent, bool) {
	switch {
	case key.Matches(msg, k.Right):
		return Next(Horizontal), true
	case key.Matches(msg, k.Down):
		return Next(Vertical), true
	case key.Matches(msg, k.Left):
		return Prev(Horizontal), true
	case key.Matches(msg, k.Up):
		return Prev(Vertical), true
	case key.Matches(msg, k.First):
		return First(), true
	case key.Matches(msg, k.Last):
		return Last(), true
	case key.Matches(msg, k.Confirm):
		return Confirm(), true
	}
	return Intent{}, false
}

// ForGroup returns a copy with the bindings that cannot act on g disabled,
// so help views only list live keys.
func (k KeyMap) ForGroup(g *Group) KeyMap {
	horizontal := g.Orientation() == Horizontal
	k.Right.SetEnabled(horizontal)
	k.Left.SetEnabled(horizontal)
	k.Down.SetEnabled(!horizontal)
	k.Up.SetEnabled(!horizontal)
	k.Confirm.SetEnabled(g.Activation() == Manual)
	return k
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Confirm}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.First, k.Last, k.Confirm},
	}
}
