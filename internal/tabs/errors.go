package tabs

import (
	"errors"
	"fmt"
)

// ErrMissingParent is matched by every MissingParentError.
var ErrMissingParent = errors.New("missing parent tabs group")

// Component names used in MissingParentError messages
const (
	ComponentList   = "TabsList"
	ComponentTab    = "TabsTab"
	ComponentPanels = "TabsPanels"
	ComponentPanel  = "TabsPanel"
)

// MissingParentError reports a sub-widget constructed without its Group.
// It is a programming error and is never retried.
type MissingParentError struct {
	Component string // e.g. "TabsTab"
}

// Error implements the error interface
func (e *MissingParentError) Error() string {
	return fmt.Sprintf("<%s /> is missing a parent <Tabs /> component.", e.Component)
}

// Is makes errors.Is(err, ErrMissingParent) hold
func (e *MissingParentError) Is(target error) bool {
	return target == ErrMissingParent
}
