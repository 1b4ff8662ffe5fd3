package connectivity

import "sync"

// notifier holds the shared state/subscription bookkeeping used by every
// Monitor implementation. Callbacks are invoked outside the lock so a
// subscriber may call back into the monitor without deadlocking.
type notifier struct {
	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(online bool)
}

func newNotifier(online bool) *notifier {
	return &notifier{
		online: online,
		subs:   make(map[int]func(online bool)),
	}
}

func (n *notifier) IsOnline() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.online
}

func (n *notifier) OnChange(fn func(online bool)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}
}

// set records the new state and, on a transition, invokes the registered
// callbacks with it. Setting the current state again is a no-op.
func (n *notifier) set(online bool) {
	n.mu.Lock()
	if n.online == online {
		n.mu.Unlock()
		return
	}
	n.online = online
	fns := make([]func(bool), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}

// Manual is a [Monitor] whose state is driven by the caller. It backs tests
// and embedders that already know their connectivity (e.g. a host app with
// its own network stack).
type Manual struct {
	*notifier
}

// NewManual returns a Manual monitor starting in the given state.
func NewManual(online bool) *Manual {
	return &Manual{notifier: newNotifier(online)}
}

// SetOnline records the new state, notifying subscribers on a transition.
func (m *Manual) SetOnline(online bool) {
	m.set(online)
}
