package capture

import (
	"sync"
	"time"
)

// Manager provides thread-safe storage and retrieval of capture sessions.
// Abandoned sessions are reaped in the background so a client that never
// finishes a flow does not leak memory.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
	}

	go m.cleanupStaleSessions()

	return m
}

func (m *Manager) cleanupStaleSessions() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		now := time.Now()
		for id, session := range m.sessions {
			// Remove sessions older than 24 hours
			if now.Sub(session.CreatedAt) > 24*time.Hour {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}

// Create registers a new session and returns it
func (m *Manager) Create() *Session {
	session := NewSession("")

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	return session
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	return session, exists
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}
