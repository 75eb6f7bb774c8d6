package status

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
)

// ErrShutdown is returned for transitions after Shutdown.
var ErrShutdown = errors.New("backend shut down")

// validTransitions defines allowed phase transitions. Degraded may re-enter
// itself to update its reason.
var validTransitions = map[chat.Phase][]chat.Phase{
	chat.Disconnected:   {chat.Connecting},
	chat.Connecting:     {chat.SyncingHistory, chat.Degraded, chat.Disconnected},
	chat.SyncingHistory: {chat.Live, chat.Degraded, chat.Disconnected},
	chat.Live:           {chat.Degraded, chat.Connecting, chat.Disconnected},
	chat.Degraded:       {chat.Connecting, chat.Degraded, chat.Disconnected},
}

// Machine tracks and enforces the connection phase of one backend.
type Machine struct {
	mu       sync.RWMutex
	backend  chat.BackendID
	current  chat.ConnState
	since    time.Time
	shutdown bool
	bus      *bus.Bus
	observe  func(Change)
}

// NewMachine creates a machine in the Disconnected phase. observe, if not nil,
// is called synchronously after every transition.
func NewMachine(backend chat.BackendID, b *bus.Bus, observe func(Change)) *Machine {
	return &Machine{
		backend: backend,
		current: chat.ConnState{Phase: chat.Disconnected},
		since:   time.Now(),
		bus:     b,
		observe: observe,
	}
}

// Current returns the current state.
func (m *Machine) Current() chat.ConnState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Since returns when the current state was entered.
func (m *Machine) Since() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.since
}

// Transition attempts to move to a new phase. Returns error if the transition is invalid.
func (m *Machine) Transition(to chat.Phase) error {
	return m.set(chat.ConnState{Phase: to})
}

// Degrade moves to Degraded with the given reason.
func (m *Machine) Degrade(reason string) error {
	if reason == "" {
		reason = "unknown"
	}
	return m.set(chat.ConnState{Phase: chat.Degraded, Reason: reason})
}

// Shutdown moves to Disconnected from any phase. No transitions are accepted afterwards.
func (m *Machine) Shutdown() {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return
	}
	m.shutdown = true
	change, changed := m.apply(chat.ConnState{Phase: chat.Disconnected})
	m.mu.Unlock()
	if changed {
		m.emit(change)
	}
}

// Terminated reports whether Shutdown was called.
func (m *Machine) Terminated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shutdown
}

func (m *Machine) set(to chat.ConnState) error {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return fmt.Errorf("%s: %w", m.backend, ErrShutdown)
	}
	allowed := validTransitions[m.current.Phase]
	if !slices.Contains(allowed, to.Phase) {
		from := m.current
		m.mu.Unlock()
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	change, changed := m.apply(to)
	m.mu.Unlock()
	if changed {
		m.emit(change)
	}
	return nil
}

// apply must be called with mu held.
func (m *Machine) apply(to chat.ConnState) (Change, bool) {
	if m.current == to {
		return Change{}, false
	}
	from := m.current
	m.current = to
	m.since = time.Now()
	return Change{Backend: m.backend, From: from, To: to, At: m.since}, true
}

func (m *Machine) emit(change Change) {
	if m.observe != nil {
		m.observe(change)
	}
	if m.bus != nil {
		m.bus.Publish(bus.Event{
			Kind:      bus.KindBackendState,
			Timestamp: change.At,
			Payload:   change,
		})
	}
}

// Change is the payload for state change events.
type Change struct {
	Backend chat.BackendID
	From    chat.ConnState
	To      chat.ConnState
	At      time.Time
}
