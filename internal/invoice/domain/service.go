package domain

import (
	"context"
	"errors"
)

type CreateInvoiceRequest struct {
	CustomerName string
	Title        string
	Items        []LineItem
	Total        float64
}

type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	List(context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOwner    = errors.New("invalid_owner")
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidTitle    = errors.New("invalid_title")
	ErrNoItems         = errors.New("no_items")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
