package draft

import (
	"context"
	"strings"
	"sync"

	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"go.uber.org/zap"
)

// ItemInput is the pending add-item row. Its fields clear after every
// add attempt, accepted or not, and a non-empty name blocks submission.
type ItemInput struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

// Composer assembles one new invoice for one owner. It exists only
// after the bank-info gate has passed and is discarded on successful
// submission or when the owner navigates away.
type Composer struct {
	ownerID  string
	invoices invoicedomain.Service
	log      *zap.Logger

	mu           sync.Mutex
	customers    []customerdomain.Customer
	customerName string
	title        string
	input        ItemInput
	items        ItemList
	editor       *Editor
	submitting   bool
}

func newComposer(ownerID string, customers []customerdomain.Customer, invoices invoicedomain.Service, log *zap.Logger) *Composer {
	c := &Composer{
		ownerID:   ownerID,
		invoices:  invoices,
		log:       log.Named("draft.composer"),
		customers: customers,
	}
	c.editor = newEditor(&c.items)
	return c
}

func (c *Composer) SetCustomer(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerName = name
}

func (c *Composer) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// SetInput records the pending add-item row as typed. Invalid numbers
// are rejected rather than coerced.
func (c *Composer) SetInput(input ItemInput) error {
	if !validAmount(input.Cost) {
		return ErrInvalidCost
	}
	if input.Quantity < 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = input
	return nil
}

// AddItem attempts to append the pending input row. The row is accepted
// only when the name is non-empty, cost > 0 and quantity >= 1; the
// input fields reset after every attempt either way.
func (c *Composer) AddItem() (invoicedomain.LineItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	input := c.input
	c.input = ItemInput{}

	if strings.TrimSpace(input.Name) == "" || input.Cost <= 0 || input.Quantity < 1 {
		return invoicedomain.LineItem{}, false
	}

	item := c.items.Append(invoicedomain.LineItem{
		CustomerName: c.customerName,
		Name:         input.Name,
		Cost:         input.Cost,
		Quantity:     input.Quantity,
		Price:        input.Cost * float64(input.Quantity),
	})
	return item, true
}

// DeleteItem removes a row; deleting an unknown id is a no-op.
func (c *Composer) DeleteItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editor.Delete(id)
}

func (c *Composer) StartEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor.StartEdit(id)
}

// ChangeEdit applies typed field changes to the open draft.
func (c *Composer) ChangeEdit(patch ItemDraftPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if patch.CustomerName != nil {
		if err := c.editor.SetCustomer(*patch.CustomerName); err != nil {
			return err
		}
	}
	if patch.Name != nil {
		if err := c.editor.SetName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Cost != nil {
		if err := c.editor.SetCost(*patch.Cost); err != nil {
			return err
		}
	}
	if patch.Quantity != nil {
		if err := c.editor.SetQuantity(*patch.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composer) SaveEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor.Save()
}

func (c *Composer) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editor.Cancel()
}

// Items returns the committed rows in insertion order.
func (c *Composer) Items() []invoicedomain.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Items()
}

// Total derives the running total from live cost and quantity.
func (c *Composer) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.items.Items())
}

// Submit validates the draft and persists the composed invoice. A
// second submit while one is outstanding is refused; on failure the
// draft is kept so nothing is lost.
func (c *Composer) Submit(ctx context.Context) (invoicedomain.Invoice, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrSubmitInFlight
	}

	customer := strings.TrimSpace(c.customerName)
	if customer == "" {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrCustomerRequired
	}
	if !c.knownCustomer(customer) {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrUnknownCustomer
	}
	if strings.TrimSpace(c.title) == "" {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrTitleRequired
	}
	if c.items.Len() == 0 {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrNoItems
	}
	if strings.TrimSpace(c.input.Name) != "" {
		c.mu.Unlock()
		return invoicedomain.Invoice{}, ErrPendingItemInput
	}

	c.submitting = true
	title := c.title
	items := c.items.Items()
	total := Total(items)
	c.mu.Unlock()

	invoice, err := c.invoices.Create(ctx, invoicedomain.CreateInvoiceRequest{
		CustomerName: customer,
		Title:        title,
		Items:        items,
		Total:        total,
	})

	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()

	if err != nil {
		c.log.Error("invoice submit failed", zap.String("owner_id", c.ownerID), zap.Error(err))
		return invoicedomain.Invoice{}, err
	}
	return invoice, nil
}

// ItemDraftPatch carries typed field changes for the open edit.
type ItemDraftPatch struct {
	CustomerName *string  `json:"customer"`
	Name         *string  `json:"name"`
	Cost         *float64 `json:"cost"`
	Quantity     *int     `json:"quantity"`
}

// State is a snapshot of the draft for the transport layer.
type State struct {
	Customer       string                    `json:"customer"`
	Title          string                    `json:"title"`
	Customers      []customerdomain.Customer `json:"customers"`
	Input          ItemInput                 `json:"input"`
	Items          []invoicedomain.LineItem  `json:"items"`
	Total          float64                   `json:"total"`
	TotalFormatted string                    `json:"total_formatted"`
	EditingID      string                    `json:"editing_id,omitempty"`
	EditDraft      *ItemDraft                `json:"edit_draft,omitempty"`
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.items.Items()
	state := State{
		Customer:       c.customerName,
		Title:          c.title,
		Customers:      c.customers,
		Input:          c.input,
		Items:          items,
		Total:          Total(items),
		TotalFormatted: FormatAmount(Total(items)),
	}
	if id, d, ok := c.editor.Editing(); ok {
		state.EditingID = id
		draft := d
		state.EditDraft = &draft
	}
	return state
}

func (c *Composer) knownCustomer(name string) bool {
	for _, customer := range c.customers {
		if customer.Name == name {
			return true
		}
	}
	return false
}
