// Package binding provides observable values shared between UI controls and
// the objects that react to them.
package binding

// Bool is a boolean cell that notifies its listeners on every write.
// Listeners run synchronously, in subscription order, on the writing
// goroutine. A Bool is not safe for concurrent use; it is meant to live on
// the UI event goroutine.
type Bool struct {
	value     bool
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func(bool)
}

// NewBool returns a cell holding value.
func NewBool(value bool) *Bool {
	return &Bool{value: value}
}

// Get returns the current value.
func (b *Bool) Get() bool {
	return b.value
}

// Set stores value and notifies every listener, even when the value did not
// change.
func (b *Bool) Set(value bool) {
	b.value = value
	// copy so a listener may cancel itself while being notified
	ls := make([]listener, len(b.listeners))
	copy(ls, b.listeners)
	for _, l := range ls {
		l.fn(value)
	}
}

// Toggle flips the value and returns the new one.
func (b *Bool) Toggle() bool {
	b.Set(!b.value)
	return b.value
}

// Subscribe registers fn to be called after each write. The returned func
// removes the subscription; calling it more than once is a no-op.
func (b *Bool) Subscribe(fn func(bool)) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of active subscriptions.
func (b *Bool) Listeners() int {
	return len(b.listeners)
}
