package tabs

import (
	"fmt"
	"strings"
)

// Activation decides whether moving focus also commits the selection.
type Activation int

const (
	// Auto commits the selection on every focus move
	Auto Activation = iota
	// Manual moves only the focus cursor; Enter/Space commits
	Manual
)

// String returns the config-file name of the activation mode
func (a Activation) String() string {
	switch a {
	case Auto:
		return "auto"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Valid reports whether a is a known activation mode.
func (a Activation) Valid() bool {
	return a == Auto || a == Manual
}

// commitsOnFocus reports whether a focus move commits the selection in this mode.
func (a Activation) commitsOnFocus() bool {
	return a != Manual
}

// ParseActivation parses "auto" or "manual" (case-insensitive). An empty
// string yields Auto.
func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "automatic":
		return Auto, nil
	case "manual":
		return Manual, nil
	default:
		return Auto, fmt.Errorf("unknown activation mode %q (expected auto or manual)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (a Activation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Activation) UnmarshalText(text []byte) error {
	v, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Orientation is the axis along which arrow keys navigate.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the config-file name of the orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// ParseOrientation parses "horizontal" or "vertical" (case-insensitive). An
// empty string yields Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q (expected horizontal or vertical)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
