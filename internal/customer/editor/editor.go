// Package editor holds the inline edit session for customer rows.
// At most one row is editable at a time; the draft survives a failed
// save so the correction is not lost.
package editor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/paperbill/paperbill/internal/customer/domain"
	"go.uber.org/zap"
)

var (
	ErrEditInProgress  = errors.New("edit_in_progress")
	ErrNotEditing      = errors.New("not_editing")
	ErrInvalidField    = errors.New("invalid_field")
	ErrConfirmRequired = errors.New("confirm_required")
)

// Draft is the in-memory copy of a row's fields during inline editing.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Editor struct {
	svc domain.Service
	log *zap.Logger

	mu        sync.Mutex
	editingID string
	draft     Draft
}

func New(svc domain.Service, log *zap.Logger) *Editor {
	return &Editor{
		svc: svc,
		log: log.Named("customer.editor"),
	}
}

// StartEdit captures the row's current fields into the draft.
func (e *Editor) StartEdit(customer domain.Customer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editingID != "" {
		return ErrEditInProgress
	}

	e.editingID = customer.ID.String()
	e.draft = Draft{
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	}
	return nil
}

// Change updates one draft field. No validation happens here; Save gates.
func (e *Editor) Change(field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editingID == "" {
		return ErrNotEditing
	}

	switch field {
	case "name":
		e.draft.Name = value
	case "email":
		e.draft.Email = value
	case "address":
		e.draft.Address = value
	default:
		return ErrInvalidField
	}
	return nil
}

// Save validates the draft and commits it through the customer service.
// Edit state is cleared only once the update is confirmed; a failed
// update keeps the session open.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editingID == "" {
		return ErrNotEditing
	}

	email := strings.TrimSpace(e.draft.Email)
	if !domain.ValidEmail(email) {
		return domain.ErrInvalidEmail
	}

	name := e.draft.Name
	address := e.draft.Address
	if err := e.svc.Update(ctx, domain.UpdateCustomerRequest{
		ID:      e.editingID,
		Name:    &name,
		Email:   &email,
		Address: &address,
	}); err != nil {
		e.log.Warn("customer update failed, keeping edit open",
			zap.String("customer_id", e.editingID), zap.Error(err))
		return err
	}

	e.editingID = ""
	e.draft = Draft{}
	return nil
}

// Cancel discards the draft unconditionally.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.editingID = ""
	e.draft = Draft{}
}

// Delete removes a customer. The caller must have confirmed the action.
func (e *Editor) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}

	e.mu.Lock()
	if e.editingID == id {
		e.editingID = ""
		e.draft = Draft{}
	}
	e.mu.Unlock()

	return e.svc.Delete(ctx, id)
}

// Editing reports the active row and draft, if any.
func (e *Editor) Editing() (string, Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editingID == "" {
		return "", Draft{}, false
	}
	return e.editingID, e.draft, true
}
