package domain

import (
	"context"
	"errors"
	"regexp"
)

type CreateCustomerRequest struct {
	Name    string
	Email   string
	Address string
}

type UpdateCustomerRequest struct {
	ID      string
	Name    *string
	Email   *string
	Address *string
}

type GetCustomerRequest struct {
	Name string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	GetByName(context.Context, GetCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidOwner  = errors.New("invalid_owner")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidID     = errors.New("invalid_id")
	ErrDuplicateName = errors.New("duplicate_name")
	ErrNotFound      = errors.New("not_found")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether value has a local@domain.tld shape.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}
