package session

import (
	"sync"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/cart"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

// Manager owns every live session, keyed by user id. Sessions are
// created at login and destroyed at logout; a valid token arriving
// after a restart gets a fresh empty session rather than an error.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts (or restarts) a session for the user.
func (m *Manager) Create(userID, email, name string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		userID:     userID,
		email:      email,
		name:       name,
		exclusions: catalog.ExclusionSet{},
	}
	m.sessions[userID] = s
	return s
}

// Get returns the live session, lazily creating one for an
// authenticated user whose session is gone.
func (m *Manager) Get(userID, email, name string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return s
	}
	return m.Create(userID, email, name)
}

// Destroy ends the user's session. Destroying an absent session is a no-op.
func (m *Manager) Destroy(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// --------------------------------------------------
// Narrow views handed to the other packages
// --------------------------------------------------

// Exclusions implements catalog.ExclusionSource. A missing session
// means no restrictions.
func (m *Manager) Exclusions(userID string) catalog.ExclusionSet {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if !ok {
		return catalog.ExclusionSet{}
	}
	return s.Exclusions()
}

// AddItem implements voice.CartSink.
func (m *Manager) AddItem(userID string, item catalog.Item) {
	m.Get(userID, "", "").AddItem(item)
}

// CartLines implements order.CartSource.
func (m *Manager) CartLines(userID string) []cart.Line {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	return s.CartLines()
}

// ClearCart implements order.CartSource.
func (m *Manager) ClearCart(userID string) {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		s.ClearCart()
	}
}
