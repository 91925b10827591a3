package notify

// Change describes one committed store transaction
type Change struct {
	// Seq increases by one with every published change
	Seq uint64
	// Projects holds the ids of projects whose own fields or item set changed
	Projects []string
	// Items holds the ids of items created or updated
	Items []string
	// Deleted holds the ids of projects and items removed
	Deleted []string
	// Reset is set when the whole graph was wiped
	Reset bool
}

// Touches reports whether the change affects the given project
func (c Change) Touches(projectID string) bool {
	if c.Reset {
		return true
	}
	for _, id := range c.Projects {
		if id == projectID {
			return true
		}
	}
	for _, id := range c.Deleted {
		if id == projectID {
			return true
		}
	}
	return false
}

type subscriber struct {
	id uint64
	fn func(Change)
}

// Bus delivers store changes to subscribers. It is not safe for concurrent
// use; publishing and subscribing happen on the goroutine that owns the store.
type Bus struct {
	subs   []subscriber
	nextID uint64
	seq    uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (b *Bus) Subscribe(fn func(Change)) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of live subscribers
func (b *Bus) Len() int {
	return len(b.subs)
}

// Publish stamps c with the next sequence number and hands it to every
// subscriber in registration order. Subscribers added or removed during
// delivery take effect from the next publish.
func (b *Bus) Publish(c Change) Change {
	b.seq++
	c.Seq = b.seq

	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)

	for _, s := range snapshot {
		s.fn(c)
	}
	return c
}
