package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// client pairs a connection with a write lock: the underlying websocket
// permits at most one concurrent writer, and feed pushes can arrive from
// any request goroutine.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) send(payload []byte) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, payload)
}

// Manager keeps track of active feed websocket connections, one per user.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*client // userID -> client
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*client)}
}

// Register registers a user connection, replacing any existing one.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[userID]; ok && old.conn != conn {
		// close old connection to avoid leaks
		_ = old.conn.Close()
	}
	m.connections[userID] = &client{conn: conn}
}

// Unregister removes a user connection.
func (m *Manager) Unregister(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cl, ok := m.connections[userID]; ok {
		_ = cl.conn.Close()
		delete(m.connections, userID)
	}
}

// SendToUser sends a text message to a user if connected. Writes to the
// same connection are serialized.
func (m *Manager) SendToUser(userID string, payload []byte) error {
	m.mu.RLock()
	cl, ok := m.connections[userID]
	m.mu.RUnlock()
	if !ok || cl.conn == nil {
		return errors.New("user not connected")
	}
	return cl.send(payload)
}

// IsConnected returns whether a user currently has an open feed socket.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[userID]
	return ok
}

// List returns a copy of current connected user IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
