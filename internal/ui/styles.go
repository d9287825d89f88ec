package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/rovetabs/internal/config"
)

// Color palette for CLI output outside the tabs widget
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Shared styles for headers, results and replay steps
var (
	// HeaderTitleStyle is for the main command title (e.g., "KEY REPLAY")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "rovetabs replay")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Layout:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// StepChangedStyle is for replay steps that committed a selection
	StepChangedStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// StepMovedStyle is for replay steps that only moved focus
	StepMovedStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// StepIgnoredStyle is for replay steps with no effect
	StepIgnoredStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// StepNoteStyle is for optional notes in parentheses
	StepNoteStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Step and result markers
const (
	StepMarkerChanged = "✓"
	StepMarkerMoved   = "●"
	StepMarkerIgnored = "·"
	SuccessMarker     = "✓"
	FailureMarker     = "✗"
)

// Styles are the widget styles derived from a layout theme.
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	SelectedTab   lipgloss.Style
	FocusedTab    lipgloss.Style // Focus cursor on an unselected tab (manual mode)
	DisabledTab   lipgloss.Style
	Panel         lipgloss.Style
	FocusedPanel  lipgloss.Style
	After         lipgloss.Style
	FocusedAfter  lipgloss.Style
	Help          lipgloss.Style
	StatusLine    lipgloss.Style
	focus         lipgloss.Color
}

// NewStyles builds widget styles from a theme. Empty theme fields use the
// built-in colours.
func NewStyles(t *config.Theme) Styles {
	theme := t.Merged()
	accent := lipgloss.Color(theme.Accent)
	focus := lipgloss.Color(theme.Focus)
	muted := lipgloss.Color(theme.Muted)
	text := lipgloss.Color(theme.Text)
	disabled := lipgloss.Color(theme.Disabled)

	tab := lipgloss.NewStyle().
		Foreground(text).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return Styles{
		Title:       lipgloss.NewStyle().Foreground(text).Bold(true),
		Tab:         tab,
		SelectedTab: tab.BorderForeground(accent).Foreground(accent).Bold(true),
		FocusedTab:  tab.BorderForeground(focus).Foreground(focus).Underline(true),
		DisabledTab: tab.Foreground(disabled).BorderForeground(disabled).Strikethrough(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focus).
			Padding(0, 1),
		After:        lipgloss.NewStyle().Foreground(muted),
		FocusedAfter: lipgloss.NewStyle().Foreground(focus).Bold(true),
		Help:         lipgloss.NewStyle().Foreground(muted),
		StatusLine:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		focus:        focus,
	}
}

// SelectedAndFocused is the style of the selected tab while it holds focus.
func (s Styles) SelectedAndFocused() lipgloss.Style {
	return s.SelectedTab.BorderForeground(s.focus).Underline(true)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
