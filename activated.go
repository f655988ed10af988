package wayroute

import (
	stdcontext "context"
	"sync"
)

// ActivatedRoute exposes the currently matched route and a subscribable
// stream of its parameter mapping. A delivery happens whenever a navigation
// changes the active route or its parameters; re-navigating to the same
// route with equal parameters delivers nothing.
//
// Delivery is synchronous and in subscription order, so a subscriber sees
// every change exactly once and in sequence.
type ActivatedRoute struct {
	mu        sync.RWMutex
	route     *Route
	params    Params
	path      string
	url       string
	navigated bool
	subs      []subscription
	nextID    uint64
}

type subscription struct {
	id uint64
	fn func(Params)
}

func newActivatedRoute() *ActivatedRoute {
	return &ActivatedRoute{}
}

// Route returns the currently active route, or nil before any navigation.
func (a *ActivatedRoute) Route() *Route {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.route
}

// Path returns the base path of the current activation.
func (a *ActivatedRoute) Path() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.path
}

// URL returns the full target of the current activation.
func (a *ActivatedRoute) URL() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.url
}

// Snapshot returns a copy of the current parameter mapping and whether any
// navigation has completed yet.
func (a *ActivatedRoute) Snapshot() (Params, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.params.clone(), a.navigated
}

// Subscribe registers fn on the parameter stream and returns its cancel
// function. If a navigation has already completed, fn immediately receives
// the current snapshot.
func (a *ActivatedRoute) Subscribe(fn func(Params)) (cancel func()) {
	a.mu.Lock()

	a.nextID++
	id := a.nextID
	a.subs = append(a.subs, subscription{id: id, fn: fn})

	var snapshot Params
	deliver := a.navigated
	if deliver {
		snapshot = a.params.clone()
	}

	a.mu.Unlock()

	if deliver {
		fn(snapshot)
	}

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()

		for i, sub := range a.subs {
			if sub.id == id {
				a.subs = append(a.subs[:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

// Observe returns a channel view of the parameter stream, cancelled through
// the given context. The channel is buffered; a consumer that falls far
// behind misses intermediate values rather than blocking navigations.
func (a *ActivatedRoute) Observe(ctx stdcontext.Context) <-chan Params {
	ch := make(chan Params, 16)

	var mu sync.Mutex
	closed := false

	cancel := a.Subscribe(func(params Params) {
		mu.Lock()
		defer mu.Unlock()

		if closed {
			return
		}

		select {
		case ch <- params:
		default:
		}
	})

	go func() {
		<-ctx.Done()
		cancel()

		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}

// set records a completed navigation and delivers the parameter mapping to
// subscribers when the activation actually changed.
func (a *ActivatedRoute) set(route *Route, params Params, path string, url string) {
	a.mu.Lock()

	if a.navigated && a.route == route && a.params.Equal(params) {
		// Same route, same parameters: record the target, deliver nothing
		a.url = url
		a.mu.Unlock()
		return
	}

	a.route = route
	a.params = params.clone()
	a.path = path
	a.url = url
	a.navigated = true

	subs := make([]subscription, len(a.subs))
	copy(subs, a.subs)
	snapshot := a.params.clone()

	a.mu.Unlock()

	// Outside the lock so a subscriber may subscribe or cancel
	for _, sub := range subs {
		sub.fn(snapshot)
	}
}
