package service

import (
	"context"
	"testing"

	"github.com/paperbill/paperbill/internal/bankinfo/domain"
	"github.com/paperbill/paperbill/internal/bankinfo/repository"
	"github.com/paperbill/paperbill/internal/usercontext"
	"github.com/paperbill/paperbill/pkg/db"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.BankInfo{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return New(Params{
		DB:   dbConn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func ownerCtx(id string) context.Context {
	return usercontext.WithOwnerID(context.Background(), id)
}

func TestGetReturnsNilWhenAbsent(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.Get(ownerCtx("owner-1"))
	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestUpsertCreatesRecord(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		BankName:      "First National",
		AccountNumber: "12345678",
		AccountName:   "Acme LLC",
		Currency:      "usd",
	})
	assert.NoError(t, err)
	assert.Equal(t, "USD", created.Currency)

	got, err := svc.Get(ownerCtx("owner-1"))
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "First National", got.BankName)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		BankName:      "Old Bank",
		AccountNumber: "111",
		Currency:      "USD",
	})
	assert.NoError(t, err)

	_, err = svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		BankName:      "New Bank",
		AccountNumber: "222",
		Currency:      "EUR",
	})
	assert.NoError(t, err)

	got, err := svc.Get(ownerCtx("owner-1"))
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "New Bank", got.BankName)
		assert.Equal(t, "222", got.AccountNumber)
		assert.Equal(t, "EUR", got.Currency)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert(context.Background(), domain.UpsertBankInfoRequest{
		BankName: "x", AccountNumber: "1", Currency: "USD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)

	_, err = svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		AccountNumber: "1", Currency: "USD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBankName)

	_, err = svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		BankName: "x", Currency: "USD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)

	_, err = svc.Upsert(ownerCtx("owner-1"), domain.UpsertBankInfoRequest{
		BankName: "x", AccountNumber: "1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestBankInfoIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert(ownerCtx("owner-a"), domain.UpsertBankInfoRequest{
		BankName: "A Bank", AccountNumber: "1", Currency: "USD",
	})
	assert.NoError(t, err)

	got, err := svc.Get(ownerCtx("owner-b"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}
