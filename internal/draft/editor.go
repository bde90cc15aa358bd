package draft

import "math"

// ItemDraft is the editable copy of a row's fields.
type ItemDraft struct {
	CustomerName string  `json:"customer"`
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	Quantity     int     `json:"quantity"`
}

// Editor is the per-row inline edit state machine: Viewing, or
// Editing{rowID, draft}. The tagged state guarantees at most one row is
// editable at a time.
type Editor struct {
	items     *ItemList
	editingID string
	draft     ItemDraft
}

func newEditor(items *ItemList) *Editor {
	return &Editor{items: items}
}

// StartEdit captures the row's current fields into the draft. Starting a
// second edit while one is open is rejected.
func (e *Editor) StartEdit(id string) error {
	if e.editingID != "" {
		return ErrEditInProgress
	}

	item, ok := e.items.Get(id)
	if !ok {
		return ErrUnknownItem
	}

	e.editingID = id
	e.draft = ItemDraft{
		CustomerName: item.CustomerName,
		Name:         item.Name,
		Cost:         item.Cost,
		Quantity:     item.Quantity,
	}
	return nil
}

func (e *Editor) SetCustomer(name string) error {
	if e.editingID == "" {
		return ErrNotEditing
	}
	e.draft.CustomerName = name
	return nil
}

func (e *Editor) SetName(name string) error {
	if e.editingID == "" {
		return ErrNotEditing
	}
	e.draft.Name = name
	return nil
}

// SetCost updates the draft cost. Invalid numbers are rejected outright
// rather than clamped, so nothing NaN-like reaches arithmetic.
func (e *Editor) SetCost(cost float64) error {
	if e.editingID == "" {
		return ErrNotEditing
	}
	if !validAmount(cost) {
		return ErrInvalidCost
	}
	e.draft.Cost = cost
	return nil
}

// SetQuantity updates the draft quantity. Zero is allowed as an
// in-progress value; negatives are rejected.
func (e *Editor) SetQuantity(quantity int) error {
	if e.editingID == "" {
		return ErrNotEditing
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	e.draft.Quantity = quantity
	return nil
}

// Save derives the price from the draft and commits every edited field,
// including the customer, then returns to viewing.
func (e *Editor) Save() error {
	if e.editingID == "" {
		return ErrNotEditing
	}

	price := e.draft.Cost * float64(e.draft.Quantity)
	committed := e.items.Replace(e.editingID, ItemPatch{
		CustomerName: &e.draft.CustomerName,
		Name:         &e.draft.Name,
		Cost:         &e.draft.Cost,
		Quantity:     &e.draft.Quantity,
		Price:        &price,
	})

	e.editingID = ""
	e.draft = ItemDraft{}

	if !committed {
		return ErrUnknownItem
	}
	return nil
}

// Cancel discards the draft unconditionally.
func (e *Editor) Cancel() {
	e.editingID = ""
	e.draft = ItemDraft{}
}

// Delete removes the row regardless of edit state.
func (e *Editor) Delete(id string) {
	if e.editingID == id {
		e.Cancel()
	}
	e.items.Remove(id)
}

// Editing reports the active row and draft, if any.
func (e *Editor) Editing() (string, ItemDraft, bool) {
	if e.editingID == "" {
		return "", ItemDraft{}, false
	}
	return e.editingID, e.draft, true
}

// DraftAmount is the live amount shown while editing.
func (e *Editor) DraftAmount() float64 {
	return e.draft.Cost * float64(e.draft.Quantity)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
