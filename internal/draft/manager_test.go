package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	"github.com/paperbill/paperbill/internal/usercontext"
)

type fakeCustomerService struct {
	customers []customerdomain.Customer
}

func (f *fakeCustomerService) Create(ctx context.Context, req customerdomain.CreateCustomerRequest) (customerdomain.Customer, error) {
	return customerdomain.Customer{}, nil
}

func (f *fakeCustomerService) List(ctx context.Context) ([]customerdomain.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerService) GetByID(ctx context.Context, id string) (customerdomain.Customer, error) {
	return customerdomain.Customer{}, customerdomain.ErrNotFound
}

func (f *fakeCustomerService) GetByName(ctx context.Context, req customerdomain.GetCustomerRequest) (customerdomain.Customer, error) {
	return customerdomain.Customer{}, customerdomain.ErrNotFound
}

func (f *fakeCustomerService) Update(ctx context.Context, req customerdomain.UpdateCustomerRequest) error {
	return nil
}

func (f *fakeCustomerService) Delete(ctx context.Context, id string) error { return nil }

type fakeBankInfoService struct {
	info *bankinfodomain.BankInfo
}

func (f *fakeBankInfoService) Get(ctx context.Context) (*bankinfodomain.BankInfo, error) {
	return f.info, nil
}

func (f *fakeBankInfoService) Upsert(ctx context.Context, req bankinfodomain.UpsertBankInfoRequest) (bankinfodomain.BankInfo, error) {
	return bankinfodomain.BankInfo{}, nil
}

func newTestManager(bankInfo *bankinfodomain.BankInfo) *Manager {
	return NewManager(ManagerParams{
		Customers: &fakeCustomerService{customers: []customerdomain.Customer{{Name: "acme"}}},
		BankInfo:  &fakeBankInfoService{info: bankInfo},
		Invoices:  &fakeInvoiceService{},
		Log:       zap.NewNop(),
	})
}

func ownerCtx(id string) context.Context {
	return usercontext.WithOwnerID(context.Background(), id)
}

func TestManagerOpenRequiresBankInfo(t *testing.T) {
	m := newTestManager(nil)

	_, err := m.Open(ownerCtx("owner-1"))
	assert.ErrorIs(t, err, ErrBankInfoRequired)
}

func TestManagerOpenWithBankInfo(t *testing.T) {
	m := newTestManager(&bankinfodomain.BankInfo{OwnerID: "owner-1", BankName: "First"})

	session, err := m.Open(ownerCtx("owner-1"))
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, 1, len(session.State().Customers))
}

func TestManagerOpenReusesSession(t *testing.T) {
	m := newTestManager(&bankinfodomain.BankInfo{OwnerID: "owner-1", BankName: "First"})

	first, err := m.Open(ownerCtx("owner-1"))
	assert.NoError(t, err)
	first.SetTitle("kept")

	second, err := m.Open(ownerCtx("owner-1"))
	assert.NoError(t, err)
	assert.Equal(t, "kept", second.State().Title)
}

func TestManagerSessionsAreOwnerScoped(t *testing.T) {
	m := newTestManager(&bankinfodomain.BankInfo{BankName: "First"})

	a, err := m.Open(ownerCtx("owner-a"))
	assert.NoError(t, err)
	a.SetTitle("a's draft")

	b, err := m.Open(ownerCtx("owner-b"))
	assert.NoError(t, err)
	assert.Empty(t, b.State().Title)
}

func TestManagerCurrentWithoutSession(t *testing.T) {
	m := newTestManager(&bankinfodomain.BankInfo{BankName: "First"})

	_, err := m.Current(ownerCtx("owner-1"))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerDiscardDropsSession(t *testing.T) {
	m := newTestManager(&bankinfodomain.BankInfo{BankName: "First"})

	_, err := m.Open(ownerCtx("owner-1"))
	assert.NoError(t, err)

	m.Discard(ownerCtx("owner-1"))

	_, err = m.Current(ownerCtx("owner-1"))
	assert.ErrorIs(t, err, ErrNoSession)
}
