package tabs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterOrder(t *testing.T) {
	r := NewRegistry()
	a := r.Register(false)
	b := r.Register(true)
	c := r.Register(false)

	items := r.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []Handle{a, b, c}, []Handle{items[0].Handle, items[1].Handle, items[2].Handle})
	assert.True(t, items[1].Disabled)
	for i, it := range items {
		assert.Equal(t, i, it.Index)
	}
}

func TestRegistry_UnregisterRenumbers(t *testing.T) {
	r := NewRegistry()
	a := r.Register(false)
	b := r.Register(false)
	c := r.Register(false)

	assert.Equal(t, 1, r.Unregister(b))

	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, a, items[0].Handle)
	assert.Equal(t, c, items[1].Handle)
	assert.Equal(t, 1, items[1].Index)

	_, ok := r.IndexOf(b)
	assert.False(t, ok)
	assert.Equal(t, -1, r.Unregister(b), "second unregister is a no-op")
}

func TestRegistry_RegisterHandleIdempotent(t *testing.T) {
	r := NewRegistry()
	h := uuid.New()

	assert.Equal(t, 0, r.RegisterHandle(h, false))
	r.Register(false)
	assert.Equal(t, 0, r.RegisterHandle(h, true), "re-registration returns existing index")
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Items()[0].Disabled, "re-registration does not overwrite state")
}

func TestRegistry_SetDisabled(t *testing.T) {
	r := NewRegistry()
	h := r.Register(false)

	assert.True(t, r.SetDisabled(h, true))
	assert.False(t, r.SetDisabled(h, true), "unchanged value")
	assert.True(t, r.Items()[0].Disabled)
	assert.False(t, r.SetDisabled(uuid.New(), true), "unknown handle")
}

func TestRegistry_ItemsIsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register(false)
	items := r.Items()
	items[0].Disabled = true

	assert.False(t, r.Items()[0].Disabled)
}
