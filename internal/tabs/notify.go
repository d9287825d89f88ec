package tabs

// Notifier fans a committed selection change out to its subscribers.
type Notifier struct {
	next int
	subs []subscriber
}

type subscriber struct {
	id int
	fn func(int)
}

// Subscribe registers fn and returns a function that removes it again.
func (n *Notifier) Subscribe(fn func(int)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	n.next++
	id := n.next
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribers.
func (n *Notifier) Len() int {
	return len(n.subs)
}

// emit calls every subscriber in subscription order. Subscribers may
// unsubscribe themselves during the call.
func (n *Notifier) emit(index int) {
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	for _, s := range subs {
		s.fn(index)
	}
}
