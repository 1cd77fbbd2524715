package quiz

import (
	"errors"
	"sync"
	"time"
)

// ErrSessionNotFound means the session id is unknown, expired, or
// already discarded.
var ErrSessionNotFound = errors.New("session not found")

// DefaultSessionTTL is how long an idle session survives before the
// registry drops it.
const DefaultSessionTTL = 30 * time.Minute

// Manager is the in-memory session registry for the HTTP layer. Each
// session owns its own state; the manager only maps ids to sessions
// and evicts abandoned ones.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Put registers a session, opportunistically evicting idle ones.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked(time.Now())
	m.sessions[s.ID] = s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove discards a session and drops it from the registry.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.Discard()
		delete(m.sessions, id)
	}
}

// Len reports the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) evictLocked(now time.Time) {
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) > m.ttl {
			s.Discard()
			delete(m.sessions, id)
		}
	}
}
