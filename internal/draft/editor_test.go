package draft

import (
	"math"
	"testing"

	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func newTestEditor(t *testing.T) (*Editor, invoicedomain.LineItem) {
	t.Helper()

	list := &ItemList{}
	item := list.Append(invoicedomain.LineItem{
		CustomerName: "acme",
		Name:         "consulting",
		Cost:         10,
		Quantity:     2,
		Price:        20,
	})
	return newEditor(list), item
}

func TestEditorStartEditCapturesRow(t *testing.T) {
	editor, item := newTestEditor(t)

	assert.NoError(t, editor.StartEdit(item.ID))

	id, draft, ok := editor.Editing()
	assert.True(t, ok)
	assert.Equal(t, item.ID, id)
	assert.Equal(t, ItemDraft{CustomerName: "acme", Name: "consulting", Cost: 10, Quantity: 2}, draft)
}

func TestEditorSecondStartEditRejected(t *testing.T) {
	editor, item := newTestEditor(t)

	assert.NoError(t, editor.StartEdit(item.ID))
	assert.ErrorIs(t, editor.StartEdit(item.ID), ErrEditInProgress)
}

func TestEditorStartEditUnknownRow(t *testing.T) {
	editor, _ := newTestEditor(t)
	assert.ErrorIs(t, editor.StartEdit("missing"), ErrUnknownItem)
}

func TestEditorChangeWithoutEdit(t *testing.T) {
	editor, _ := newTestEditor(t)

	assert.ErrorIs(t, editor.SetName("x"), ErrNotEditing)
	assert.ErrorIs(t, editor.SetCost(1), ErrNotEditing)
	assert.ErrorIs(t, editor.SetQuantity(1), ErrNotEditing)
}

func TestEditorRejectsInvalidNumbers(t *testing.T) {
	editor, item := newTestEditor(t)
	assert.NoError(t, editor.StartEdit(item.ID))

	assert.ErrorIs(t, editor.SetCost(math.NaN()), ErrInvalidCost)
	assert.ErrorIs(t, editor.SetCost(math.Inf(1)), ErrInvalidCost)
	assert.ErrorIs(t, editor.SetCost(-1), ErrInvalidCost)
	assert.ErrorIs(t, editor.SetQuantity(-1), ErrInvalidQuantity)

	// The open draft is untouched by rejected changes.
	_, draft, _ := editor.Editing()
	assert.Equal(t, 10.0, draft.Cost)
	assert.Equal(t, 2, draft.Quantity)
}

func TestEditorSaveRecomputesPrice(t *testing.T) {
	list := &ItemList{}
	item := list.Append(invoicedomain.LineItem{Name: "work", Cost: 10, Quantity: 2, Price: 20})
	editor := newEditor(list)

	assert.NoError(t, editor.StartEdit(item.ID))
	assert.NoError(t, editor.SetCost(7))
	assert.NoError(t, editor.SetQuantity(3))
	assert.NoError(t, editor.Save())

	got, _ := list.Get(item.ID)
	assert.Equal(t, 7.0, got.Cost)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, 21.0, got.Price)

	_, _, editing := editor.Editing()
	assert.False(t, editing)
}

func TestEditorSaveCommitsCustomer(t *testing.T) {
	editor, item := newTestEditor(t)

	assert.NoError(t, editor.StartEdit(item.ID))
	assert.NoError(t, editor.SetCustomer("globex"))
	assert.NoError(t, editor.Save())

	got, _ := editor.items.Get(item.ID)
	assert.Equal(t, "globex", got.CustomerName)
}

func TestEditorCancelLeavesRowUntouched(t *testing.T) {
	editor, item := newTestEditor(t)
	before, _ := editor.items.Get(item.ID)

	assert.NoError(t, editor.StartEdit(item.ID))
	assert.NoError(t, editor.SetName("changed"))
	assert.NoError(t, editor.SetCost(99))
	editor.Cancel()

	after, _ := editor.items.Get(item.ID)
	assert.Equal(t, before, after)

	_, _, editing := editor.Editing()
	assert.False(t, editing)
}

func TestEditorDeleteWhileEditingClearsState(t *testing.T) {
	editor, item := newTestEditor(t)

	assert.NoError(t, editor.StartEdit(item.ID))
	editor.Delete(item.ID)

	_, _, editing := editor.Editing()
	assert.False(t, editing)
	assert.Equal(t, 0, editor.items.Len())
}

func TestEditorDraftAmountIsLive(t *testing.T) {
	editor, item := newTestEditor(t)

	assert.NoError(t, editor.StartEdit(item.ID))
	assert.NoError(t, editor.SetCost(4))
	assert.NoError(t, editor.SetQuantity(5))
	assert.Equal(t, 20.0, editor.DraftAmount())
}
