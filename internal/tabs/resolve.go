package tabs

// Resolve maps a desired index onto a valid, enabled index of items.
//
// Negative values anchor at 0 and values past the end anchor at N-1. When the
// anchor is disabled the search continues forward, wrapping past the end, and
// stops at the first enabled item. If every item is disabled the anchor is
// returned unchanged. Resolve returns -1 for an empty list.
func Resolve(desired int, items []Item) int {
	n := len(items)
	if n == 0 {
		return -1
	}

	anchor := desired
	switch {
	case anchor < 0:
		anchor = 0
	case anchor >= n:
		anchor = n - 1
	}

	for step := 0; step < n; step++ {
		i := (anchor + step) % n
		if !items[i].Disabled {
			return i
		}
	}
	return anchor
}

// NextEnabled returns the first enabled index after from, wrapping around.
// It returns false when no enabled item other than from exists.
func NextEnabled(from int, items []Item) (int, bool) {
	return scan(from, 1, items)
}

// PrevEnabled returns the first enabled index before from, wrapping around.
// It returns false when no enabled item other than from exists.
func PrevEnabled(from int, items []Item) (int, bool) {
	return scan(from, -1, items)
}

// FirstEnabled returns the lowest enabled index.
func FirstEnabled(items []Item) (int, bool) {
	for i, it := range items {
		if !it.Disabled {
			return i, true
		}
	}
	return -1, false
}

// LastEnabled returns the highest enabled index.
func LastEnabled(items []Item) (int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].Disabled {
			return i, true
		}
	}
	return -1, false
}

// scan walks at most N-1 steps from from in direction dir. A from outside
// [0, N) is allowed; the walk then starts from the nearest edge.
func scan(from, dir int, items []Item) (int, bool) {
	n := len(items)
	if n == 0 {
		return -1, false
	}
	if from < 0 || from >= n {
		if dir > 0 {
			return FirstEnabled(items)
		}
		return LastEnabled(items)
	}
	for step := 1; step < n; step++ {
		i := ((from+dir*step)%n + n) % n
		if !items[i].Disabled {
			return i, true
		}
	}
	return -1, false
}
