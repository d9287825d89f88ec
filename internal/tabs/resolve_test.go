package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// itemsWith builds n items, disabling the given indexes.
func itemsWith(n int, disabled ...int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Index: i}
	}
	for _, d := range disabled {
		items[d].Disabled = true
	}
	return items
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		desired  int
		items    []Item
		expected int
	}{
		{"in range", 1, itemsWith(3), 1},
		{"negative clamps to first", -2, itemsWith(3), 0},
		{"very negative clamps to first", -1000, itemsWith(3), 0},
		{"too large clamps to last", 5, itemsWith(3), 2},
		{"exactly N clamps to last", 3, itemsWith(3), 2},
		{"disabled skips forward", 0, itemsWith(3, 0), 1},
		{"disabled last wraps to first", 2, itemsWith(3, 2), 0},
		{"too large onto disabled last wraps", 9, itemsWith(3, 2), 0},
		{"negative onto disabled first skips forward", -1, itemsWith(3, 0), 1},
		{"run of disabled", 1, itemsWith(5, 1, 2, 3), 4},
		{"run of disabled wrapping", 3, itemsWith(5, 3, 4, 0), 1},
		{"single item", 7, itemsWith(1), 0},
		{"all disabled returns anchor", 1, itemsWith(3, 0, 1, 2), 1},
		{"all disabled too large returns last", 8, itemsWith(3, 0, 1, 2), 2},
		{"empty", 0, nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.desired, tt.items))
		})
	}
}

func TestResolveAlwaysInRange(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			items := make([]Item, n)
			anyEnabled := false
			for i := range items {
				items[i] = Item{Index: i, Disabled: mask&(1<<i) != 0}
				if !items[i].Disabled {
					anyEnabled = true
				}
			}
			for desired := -n - 2; desired <= 2*n+2; desired++ {
				got := Resolve(desired, items)
				if got < 0 || got >= n {
					t.Fatalf("Resolve(%d) with n=%d mask=%b = %d, out of range", desired, n, mask, got)
				}
				if anyEnabled && items[got].Disabled {
					t.Fatalf("Resolve(%d) with n=%d mask=%b = %d, which is disabled", desired, n, mask, got)
				}
			}
		}
	}
}

func TestNextPrevEnabled(t *testing.T) {
	items := itemsWith(5, 1, 3)

	tests := []struct {
		name   string
		fn     func(int, []Item) (int, bool)
		from   int
		want   int
		wantOK bool
	}{
		{"next skips disabled", NextEnabled, 0, 2, true},
		{"next wraps", NextEnabled, 4, 0, true},
		{"next from disabled", NextEnabled, 1, 2, true},
		{"prev skips disabled", PrevEnabled, 4, 2, true},
		{"prev wraps", PrevEnabled, 0, 4, true},
		{"prev from disabled", PrevEnabled, 3, 2, true},
		{"next from below range", NextEnabled, -1, 0, true},
		{"prev from above range", PrevEnabled, 10, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.from, items)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextEnabled_NoOtherEnabled(t *testing.T) {
	_, ok := NextEnabled(1, itemsWith(3, 0, 2))
	assert.False(t, ok, "only the starting item is enabled")

	_, ok = PrevEnabled(0, itemsWith(1))
	assert.False(t, ok, "single item has no neighbour")

	_, ok = NextEnabled(0, itemsWith(3, 0, 1, 2))
	assert.False(t, ok, "all disabled")

	_, ok = NextEnabled(0, nil)
	assert.False(t, ok, "empty")
}

func TestFirstLastEnabled(t *testing.T) {
	i, ok := FirstEnabled(itemsWith(4, 0, 1))
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = LastEnabled(itemsWith(4, 3))
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = FirstEnabled(itemsWith(2, 0, 1))
	assert.False(t, ok)
	_, ok = LastEnabled(nil)
	assert.False(t, ok)
}

func TestNextIsCyclic(t *testing.T) {
	items := itemsWith(7, 2, 5)
	enabled := 5

	for start := 0; start < len(items); start++ {
		if items[start].Disabled {
			continue
		}
		cur := start
		for step := 0; step < enabled; step++ {
			next, ok := NextEnabled(cur, items)
			if !ok {
				t.Fatalf("NextEnabled(%d) found nothing", cur)
			}
			cur = next
		}
		assert.Equal(t, start, cur, "Next applied %d times from %d", enabled, start)
	}
}
