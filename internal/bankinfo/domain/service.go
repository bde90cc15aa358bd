package domain

import (
	"context"
	"errors"
)

type UpsertBankInfoRequest struct {
	BankName      string
	AccountNumber string
	AccountName   string
	Currency      string
}

type Service interface {
	// Get returns the owner's bank info, or nil when none exists.
	Get(context.Context) (*BankInfo, error)
	// Upsert creates or replaces the owner's bank info.
	Upsert(context.Context, UpsertBankInfoRequest) (BankInfo, error)
}

var (
	ErrInvalidOwner    = errors.New("invalid_owner")
	ErrInvalidBankName = errors.New("invalid_bank_name")
	ErrInvalidAccount  = errors.New("invalid_account_number")
	ErrInvalidCurrency = errors.New("invalid_currency")
)
