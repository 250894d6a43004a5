// Package scroll derives page chrome state from the viewport scroll offset and
// fans it out to subscribed views.
package scroll

import "sync"

const (
	compactThreshold   = 20
	topButtonThreshold = 300
)

// State holds the two flags the page chrome derives from the scroll offset.
// Both are recomputed from scratch on every notification; nothing is diffed,
// so the flags can never drift from the true offset.
type State struct {
	Offset           int
	HeaderCompact    bool
	TopButtonVisible bool
}

// DeriveState computes the chrome flags for an offset. Negative offsets are
// treated as the top of the page.
func DeriveState(offset int) State {
	if offset < 0 {
		offset = 0
	}
	return State{
		Offset:           offset,
		HeaderCompact:    offset > compactThreshold,
		TopButtonVisible: offset > topButtonThreshold,
	}
}

// Monitor is the single entry point for scroll notifications. Views subscribe
// for derived State and own the returned handle; a handle that is never
// released keeps firing against a torn-down view.
type Monitor struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(State)
	last   State
}

func NewMonitor() *Monitor {
	return &Monitor{subs: map[int]func(State){}}
}

// Subscription identifies one registered observer. Release is idempotent.
type Subscription struct {
	monitor *Monitor
	id      int
}

// Subscribe registers fn for every future notification. The callback runs
// inline on the goroutine that calls Publish.
func (m *Monitor) Subscribe(fn func(State)) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.subs[id] = fn
	return &Subscription{monitor: m, id: id}
}

// Publish derives the state for offset and notifies every live subscription.
func (m *Monitor) Publish(offset int) State {
	state := DeriveState(offset)
	m.mu.Lock()
	m.last = state
	callbacks := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()
	for _, fn := range callbacks {
		fn(state)
	}
	return state
}

// Last returns the most recently published state.
func (m *Monitor) Last() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Release deregisters the subscription. After Release returns, the callback
// will not fire again.
func (s *Subscription) Release() {
	if s == nil || s.monitor == nil {
		return
	}
	s.monitor.mu.Lock()
	delete(s.monitor.subs, s.id)
	s.monitor.mu.Unlock()
	s.monitor = nil
}
