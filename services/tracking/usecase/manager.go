package usecase

import (
	"fmt"
	"sync"

	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/realtime"
)

// ChannelFactory builds a fresh channel per session; sessions never
// share a connection
type ChannelFactory func() (realtime.Channel, error)

// Manager owns at most one active tracking session. Opening a session
// while another is active (same order or not) supersedes the earlier
// one by closing it first.
type Manager struct {
	newChannel ChannelFactory
	cfg        SessionConfig

	mu     sync.Mutex
	active *Session
}

// NewManager creates a session manager with the given channel factory
func NewManager(newChannel ChannelFactory, cfg SessionConfig) *Manager {
	return &Manager{
		newChannel: newChannel,
		cfg:        cfg,
	}
}

// Open creates and opens a session for orderID, superseding any active one
func (m *Manager) Open(orderID string) (*Session, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id is required")
	}

	channel, err := m.newChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to build realtime channel: %w", err)
	}

	m.mu.Lock()
	prev := m.active
	session := NewSession(orderID, channel, m.cfg)
	m.active = session
	m.mu.Unlock()

	if prev != nil {
		logger.Info("Superseding active tracking session",
			logger.String("previous_order_id", prev.OrderID()),
			logger.String("order_id", orderID))
		prev.Close()
	}

	if err := session.Open(); err != nil {
		return nil, err
	}
	return session, nil
}

// Active returns the current session, or nil when none is open
func (m *Manager) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Close closes the active session, if any. Idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	session := m.active
	m.active = nil
	m.mu.Unlock()

	if session != nil {
		session.Close()
	}
}
