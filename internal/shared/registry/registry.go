// Package registry tracks live client connections for downstream push
// dispatchers. The workflow core never touches it directly; it only persists
// notifications, and an external dispatcher may consult the registry to relay
// them.
package registry

import (
	"sync"
	"time"
)

// DefaultOnlineTimeout is the duration after which a connection with no
// activity is considered stale.
const DefaultOnlineTimeout = 5 * time.Minute

// Connection describes one registered client connection.
type Connection struct {
	UserID     uint
	ConnID     string
	LastSeenAt time.Time
}

// IsOnline reports whether the connection has been seen recently.
func (c Connection) IsOnline() bool {
	return time.Since(c.LastSeenAt) < DefaultOnlineTimeout
}

// ConnectionRegistry is a process-scoped map of user id to connection ids.
// A user may hold multiple connections (several tabs or devices).
type ConnectionRegistry interface {
	Register(userID uint, connID string)
	Unregister(userID uint, connID string)
	Lookup(userID uint) []Connection
	Touch(userID uint, connID string)
}

type memoryRegistry struct {
	mu    sync.RWMutex
	conns map[uint]map[string]Connection
}

// NewMemoryRegistry creates an empty in-process registry.
func NewMemoryRegistry() ConnectionRegistry {
	return &memoryRegistry{
		conns: make(map[uint]map[string]Connection),
	}
}

func (r *memoryRegistry) Register(userID uint, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conns[userID] == nil {
		r.conns[userID] = make(map[string]Connection)
	}
	r.conns[userID][connID] = Connection{
		UserID:     userID,
		ConnID:     connID,
		LastSeenAt: time.Now(),
	}
}

func (r *memoryRegistry) Unregister(userID uint, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns[userID], connID)
	if len(r.conns[userID]) == 0 {
		delete(r.conns, userID)
	}
}

func (r *memoryRegistry) Lookup(userID uint) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byConn := r.conns[userID]
	result := make([]Connection, 0, len(byConn))
	for _, conn := range byConn {
		result = append(result, conn)
	}
	return result
}

func (r *memoryRegistry) Touch(userID uint, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conn, ok := r.conns[userID][connID]; ok {
		conn.LastSeenAt = time.Now()
		r.conns[userID][connID] = conn
	}
}
