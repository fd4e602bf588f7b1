package session

import "sync"

// ContextKey names a logical subscription context. Each context holds at
// most one live feed subscription.
type ContextKey string

const (
	// ContextRoom is the subscription scoped to the currently open room.
	ContextRoom ContextKey = "room"
	// ContextGlobal is the all-rooms listener feeding the notification
	// router, opened for the lifetime of an authenticated session.
	ContextGlobal ContextKey = "global"
)

type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
)

// Lifecycle tracks the subscription state machine per context and owns the
// teardown callbacks. All transitions are synchronous.
type Lifecycle struct {
	mu        sync.Mutex
	states    map[ContextKey]State
	teardowns map[ContextKey]func()
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		states:    make(map[ContextKey]State),
		teardowns: make(map[ContextKey]func()),
	}
}

// Begin moves a context to Opening. Any live subscription for the context
// is torn down first, so there is no window where two subscriptions for the
// same context receive events.
func (l *Lifecycle) Begin(key ContextKey) {
	l.Close(key)

	l.mu.Lock()
	l.states[key] = StateOpening
	l.mu.Unlock()
}

// Open records the acknowledged subscription's teardown and moves the
// context to Open.
func (l *Lifecycle) Open(key ContextKey, teardown func()) {
	l.mu.Lock()
	l.states[key] = StateOpen
	l.teardowns[key] = teardown
	l.mu.Unlock()
}

// Close tears the context down and returns it to Closed. Closing an already
// Closed context is a no-op.
func (l *Lifecycle) Close(key ContextKey) {
	l.mu.Lock()
	teardown := l.teardowns[key]
	delete(l.teardowns, key)
	l.states[key] = StateClosed
	l.mu.Unlock()

	if teardown != nil {
		teardown()
	}
}

func (l *Lifecycle) State(key ContextKey) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.states[key]
}
