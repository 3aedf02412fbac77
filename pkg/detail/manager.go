package detail

import (
	"sync"

	"github.com/google/uuid"
)

// Session pairs a controller with its own lock. Handlers take the lock
// for the whole request so concurrent calls against one session serialize
// instead of interleaving state transitions.
type Session struct {
	ID string

	mu         sync.Mutex
	controller *Controller
}

// Do runs fn with exclusive access to the session's controller.
func (s *Session) Do(fn func(ctrl *Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.controller)
}

// Manager tracks all open detail sessions, keyed by session ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Open creates a session for an asset and returns it. Opening the same
// asset twice yields two independent sessions.
func (m *Manager) Open(ctrl *Controller) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &Session{
		ID:         uuid.NewString(),
		controller: ctrl,
	}
	m.sessions[session.ID] = session
	return session
}

// Get retrieves a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	return session, ok
}

// Close drops a session. Closing an unknown ID is a no-op.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// Count reports how many sessions are open.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
