package draft

import (
	"github.com/google/uuid"

	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
)

// ItemPatch carries the fields an edit commits into a stored row. Price
// is precomputed by the editor; the list never recomputes it.
type ItemPatch struct {
	CustomerName *string
	Name         *string
	Cost         *float64
	Quantity     *int
	Price        *float64
}

// ItemList is the ordered line-item store for one draft. Insertion order
// is preserved; it lives only as long as the composer session.
type ItemList struct {
	items []invoicedomain.LineItem
}

// Append adds the item to the end, assigning a fresh row ID when the
// item carries none or a duplicate.
func (l *ItemList) Append(item invoicedomain.LineItem) invoicedomain.LineItem {
	if item.ID == "" || l.contains(item.ID) {
		item.ID = uuid.NewString()
	}
	l.items = append(l.items, item)
	return item
}

// Remove drops the item with the given id. Removing an unknown id is a
// no-op.
func (l *ItemList) Remove(id string) {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Replace merges the patch into the matching item and reports whether a
// row matched.
func (l *ItemList) Replace(id string, patch ItemPatch) bool {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		if patch.CustomerName != nil {
			l.items[i].CustomerName = *patch.CustomerName
		}
		if patch.Name != nil {
			l.items[i].Name = *patch.Name
		}
		if patch.Cost != nil {
			l.items[i].Cost = *patch.Cost
		}
		if patch.Quantity != nil {
			l.items[i].Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			l.items[i].Price = *patch.Price
		}
		return true
	}
	return false
}

// Get returns a copy of the item with the given id.
func (l *ItemList) Get(id string) (invoicedomain.LineItem, bool) {
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return invoicedomain.LineItem{}, false
}

// Items returns a copy of the sequence in insertion order.
func (l *ItemList) Items() []invoicedomain.LineItem {
	out := make([]invoicedomain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ItemList) Len() int { return len(l.items) }

func (l *ItemList) contains(id string) bool {
	for _, item := range l.items {
		if item.ID == id {
			return true
		}
	}
	return false
}
