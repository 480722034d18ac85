package session

import (
	"sync"

	"github.com/google/uuid"

	"circletrace/logger"
)

// Manager tracks live sessions by id. A session is created per connection and
// removed when its connection goes away.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	size     int
}

func NewManager(canvasSize int) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		size:     canvasSize,
	}
}

// Open creates a session for a freshly connected client and starts its loop.
func (m *Manager) Open(conn Conn, name string) *Session {
	id := uuid.NewString()
	s := New(id, name, conn, m.size)
	s.OnClose = m.remove

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	go s.Run()
	logger.Info(logger.Fields{"session": id, "name": name}, "session opened")
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	logger.Info(logger.Fields{"session": id}, "session closed")
}
