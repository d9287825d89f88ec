package tabs

import "fmt"

// IntentKind identifies what the user asked for.
type IntentKind int

const (
	IntentNone       IntentKind = iota
	IntentNext                  // ArrowRight / ArrowDown
	IntentPrev                  // ArrowLeft / ArrowUp
	IntentFirst                 // Home / PageUp
	IntentLast                  // End / PageDown
	IntentConfirm               // Enter / Space
	IntentActivate              // pointer click on a tab
	IntentFocus                 // focus placed on a tab from outside the group
	IntentFocusEnter            // sequential focus navigation into the list
	IntentBlur                  // focus left the list
)

var intentNames = map[IntentKind]string{
	IntentNone:       "none",
	IntentNext:       "next",
	IntentPrev:       "prev",
	IntentFirst:      "first",
	IntentLast:       "last",
	IntentConfirm:    "confirm",
	IntentActivate:   "activate",
	IntentFocus:      "focus",
	IntentFocusEnter: "focus_enter",
	IntentBlur:       "blur",
}

// String implements fmt.Stringer
func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return fmt.Sprintf("IntentKind(%d)", int(k))
}

// Intent is one navigation input delivered to a Group.
type Intent struct {
	Kind  IntentKind
	Axis  Orientation // Next/Prev only: the axis of the key that was pressed
	Index int         // Activate/Focus only: the target item
}

// String implements fmt.Stringer
func (in Intent) String() string {
	switch in.Kind {
	case IntentNext, IntentPrev:
		return fmt.Sprintf("%s(%s)", in.Kind, in.Axis)
	case IntentActivate, IntentFocus:
		return fmt.Sprintf("%s(%d)", in.Kind, in.Index)
	default:
		return in.Kind.String()
	}
}

// Next moves to the following enabled item along axis.
func Next(axis Orientation) Intent { return Intent{Kind: IntentNext, Axis: axis} }

// Prev moves to the preceding enabled item along axis.
func Prev(axis Orientation) Intent { return Intent{Kind: IntentPrev, Axis: axis} }

// First moves to the first enabled item.
func First() Intent { return Intent{Kind: IntentFirst} }

// Last moves to the last enabled item.
func Last() Intent { return Intent{Kind: IntentLast} }

// Confirm commits the focused item in manual mode.
func Confirm() Intent { return Intent{Kind: IntentConfirm} }

// Activate selects item i directly, as a pointer click does.
func Activate(i int) Intent { return Intent{Kind: IntentActivate, Index: i} }

// FocusAt places focus on item i.
func FocusAt(i int) Intent { return Intent{Kind: IntentFocus, Index: i} }

// FocusEnter lands focus on the selected item.
func FocusEnter() Intent { return Intent{Kind: IntentFocusEnter} }

// Blur removes focus from the list.
func Blur() Intent { return Intent{Kind: IntentBlur} }
