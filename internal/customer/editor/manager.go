package editor

import (
	"sync"

	"github.com/paperbill/paperbill/internal/customer/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Manager keeps one edit session per owner.
type Manager struct {
	svc domain.Service
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Editor
}

type ManagerParams struct {
	fx.In

	Svc domain.Service
	Log *zap.Logger
}

func NewManager(p ManagerParams) *Manager {
	return &Manager{
		svc:      p.Svc,
		log:      p.Log,
		sessions: make(map[string]*Editor),
	}
}

// For returns the owner's edit session, creating it on first use.
func (m *Manager) For(ownerID string) *Editor {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[ownerID]
	if !ok {
		session = New(m.svc, m.log)
		m.sessions[ownerID] = session
	}
	return session
}
