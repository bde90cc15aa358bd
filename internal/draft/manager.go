package draft

import (
	"context"
	"sync"

	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"

	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"github.com/paperbill/paperbill/internal/usercontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Manager keeps at most one composer session per owner. Opening a
// session is gated on the owner's bank info being present.
type Manager struct {
	customers customerdomain.Service
	bankInfo  bankinfodomain.Service
	invoices  invoicedomain.Service
	log       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Composer
}

type ManagerParams struct {
	fx.In

	Customers customerdomain.Service
	BankInfo  bankinfodomain.Service
	Invoices  invoicedomain.Service
	Log       *zap.Logger
}

func NewManager(p ManagerParams) *Manager {
	return &Manager{
		customers: p.Customers,
		bankInfo:  p.BankInfo,
		invoices:  p.Invoices,
		log:       p.Log,
		sessions:  make(map[string]*Composer),
	}
}

// Open returns the owner's composer, creating it after the bank-info
// gate passes. Without bank info no composer operation is reachable.
func (m *Manager) Open(ctx context.Context) (*Composer, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return nil, invoicedomain.ErrInvalidOwner
	}

	m.mu.Lock()
	if session, found := m.sessions[ownerID]; found {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	info, err := m.bankInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrBankInfoRequired
	}

	customers, err := m.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if session, found := m.sessions[ownerID]; found {
		return session, nil
	}
	session := newComposer(ownerID, customers, m.invoices, m.log)
	m.sessions[ownerID] = session
	return session, nil
}

// Current returns the owner's open session without creating one.
func (m *Manager) Current(ctx context.Context) (*Composer, error) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return nil, invoicedomain.ErrInvalidOwner
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	session, found := m.sessions[ownerID]
	if !found {
		return nil, ErrNoSession
	}
	return session, nil
}

// Discard drops the owner's session; the draft is never autosaved.
func (m *Manager) Discard(ctx context.Context) {
	ownerID, ok := usercontext.OwnerIDFromContext(ctx)
	if !ok {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, ownerID)
}
