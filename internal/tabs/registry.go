package tabs

import "github.com/google/uuid"

// Handle is the stable identity of a registered item. Indexes shift as items
// come and go; handles never do.
type Handle = uuid.UUID

// Item is one registered tab as seen at a single point in time.
type Item struct {
	Index    int    // Position in navigation order, dense over [0, N)
	Handle   Handle // Stable identity
	Disabled bool   // Disabled items can be neither focused nor selected
}

type entry struct {
	handle   Handle
	disabled bool
}

// Registry is the ordered collection of registered items. Insertion order is
// navigation order.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a new item and returns its handle.
func (r *Registry) Register(disabled bool) Handle {
	h := uuid.New()
	r.entries = append(r.entries, entry{handle: h, disabled: disabled})
	return h
}

// RegisterHandle appends an item with a caller-supplied identity and returns
// its index. Registering a handle that is already present is a no-op that
// returns the existing index.
func (r *Registry) RegisterHandle(h Handle, disabled bool) int {
	if i, ok := r.IndexOf(h); ok {
		return i
	}
	r.entries = append(r.entries, entry{handle: h, disabled: disabled})
	return len(r.entries) - 1
}

// Unregister removes the item and returns the index it occupied. Later items
// move down by one. Unknown handles return -1.
func (r *Registry) Unregister(h Handle) int {
	i, ok := r.IndexOf(h)
	if !ok {
		return -1
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return i
}

// SetDisabled updates the enabled state of an item. It reports whether the
// stored value changed.
func (r *Registry) SetDisabled(h Handle, disabled bool) bool {
	i, ok := r.IndexOf(h)
	if !ok || r.entries[i].disabled == disabled {
		return false
	}
	r.entries[i].disabled = disabled
	return true
}

// IndexOf returns the current index of h.
func (r *Registry) IndexOf(h Handle) (int, bool) {
	for i, e := range r.entries {
		if e.handle == h {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Items returns an ordered snapshot of the registry.
func (r *Registry) Items() []Item {
	items := make([]Item, len(r.entries))
	for i, e := range r.entries {
		items[i] = Item{Index: i, Handle: e.handle, Disabled: e.disabled}
	}
	return items
}
