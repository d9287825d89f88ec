package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/muurk/rovetabs/internal/tabs"
)

// CurrentVersion is the layout file format version
const CurrentVersion = 1

// ErrNoTabs is returned by Validate for a layout without tabs.
var ErrNoTabs = errors.New("layout has no tabs")

// Layout is the entire contents of a layout file.
type Layout struct {
	Version      int              `yaml:"version"`
	Title        string           `yaml:"title,omitempty"`
	DefaultIndex int              `yaml:"default_index"`
	Orientation  tabs.Orientation `yaml:"orientation"` // horizontal | vertical
	Activation   tabs.Activation  `yaml:"activation"`  // auto | manual
	Tabs         []TabDef         `yaml:"tabs"`
	Theme        *Theme           `yaml:"theme,omitempty"`
}

// TabDef is one tab and the content of its paired panel.
type TabDef struct {
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
	Content  string `yaml:"content,omitempty"`
}

// Theme holds the colours used by the renderer, as "#RRGGBB" hex strings or
// ANSI colour numbers.
type Theme struct {
	Accent   string `yaml:"accent,omitempty"`   // Selected tab and borders
	Focus    string `yaml:"focus,omitempty"`    // Focus cursor
	Muted    string `yaml:"muted,omitempty"`    // Disabled tabs and help text
	Text     string `yaml:"text,omitempty"`     // Normal tab labels
	Disabled string `yaml:"disabled,omitempty"` // Disabled tab labels
}

// ValidationError reports a layout field that cannot be interpreted
type ValidationError struct {
	Field   string // e.g. "orientation", "tabs[2].label"
	Message string
	Err     error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid layout: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the layout written by "rovetabs config init".
func Default() *Layout {
	return &Layout{
		Version:      CurrentVersion,
		Title:        "rovetabs",
		DefaultIndex: 0,
		Orientation:  tabs.Horizontal,
		Activation:   tabs.Auto,
		Tabs: []TabDef{
			{Label: "Overview", Content: "Use the arrow keys to move between tabs.\nTab moves focus into this panel."},
			{Label: "Activity", Content: "Home/PgUp jumps to the first tab, End/PgDn to the last."},
			{Label: "Archive", Disabled: true, Content: "Disabled tabs are skipped."},
			{Label: "Settings", Content: "In manual mode press Enter or Space to select the focused tab."},
		},
		Theme: DefaultTheme(),
	}
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:   "#7D56F4",
		Focus:    "#43BF6D",
		Muted:    "#626262",
		Text:     "#FFFFFF",
		Disabled: "#4A4A4A",
	}
}

var colourPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|#[0-9A-Fa-f]{3}|[0-9]{1,3})$`)

// Validate checks every field that has to be interpretable. It returns the
// first problem found.
func (l *Layout) Validate() error {
	if l.Version != CurrentVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported layout version %d (expected %d)", l.Version, CurrentVersion),
		}
	}
	if !l.Orientation.Valid() {
		return &ValidationError{Field: "orientation", Message: fmt.Sprintf("unknown orientation %s", l.Orientation)}
	}
	if !l.Activation.Valid() {
		return &ValidationError{Field: "activation", Message: fmt.Sprintf("unknown activation mode %s", l.Activation)}
	}
	if len(l.Tabs) == 0 {
		return &ValidationError{Field: "tabs", Message: "at least one tab is required", Err: ErrNoTabs}
	}
	for i, t := range l.Tabs {
		if strings.TrimSpace(t.Label) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("tabs[%d].label", i),
				Message: "label cannot be empty",
			}
		}
	}
	if l.Theme != nil {
		for _, f := range l.Theme.fields() {
			if f.value != "" && !colourPattern.MatchString(f.value) {
				return &ValidationError{
					Field:   "theme." + f.name,
					Message: fmt.Sprintf("%q is not a hex colour or ANSI colour number", f.value),
				}
			}
		}
	}
	return nil
}

type themeField struct {
	name  string
	value string
}

// fields lists the theme colours in file order.
func (t *Theme) fields() []themeField {
	return []themeField{
		{"accent", t.Accent},
		{"focus", t.Focus},
		{"muted", t.Muted},
		{"text", t.Text},
		{"disabled", t.Disabled},
	}
}

// Merged returns the theme with empty fields filled from DefaultTheme.
func (t *Theme) Merged() Theme {
	out := *DefaultTheme()
	if t == nil {
		return out
	}
	if t.Accent != "" {
		out.Accent = t.Accent
	}
	if t.Focus != "" {
		out.Focus = t.Focus
	}
	if t.Muted != "" {
		out.Muted = t.Muted
	}
	if t.Text != "" {
		out.Text = t.Text
	}
	if t.Disabled != "" {
		out.Disabled = t.Disabled
	}
	return out
}

// GroupConfig validates the layout and converts it to a tabs.Config.
func (l *Layout) GroupConfig() (tabs.Config, error) {
	if err := l.Validate(); err != nil {
		return tabs.Config{}, err
	}
	return tabs.Config{
		DefaultIndex: l.DefaultIndex,
		Orientation:  l.Orientation,
		Activation:   l.Activation,
	}, nil
}

// Labels returns the tab labels in order.
func (l *Layout) Labels() []string {
	labels := make([]string, len(l.Tabs))
	for i, t := range l.Tabs {
		labels[i] = t.Label
	}
	return labels
}
