package draft

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	customerdomain "github.com/paperbill/paperbill/internal/customer/domain"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
)

type fakeInvoiceService struct {
	mu      sync.Mutex
	created []invoicedomain.CreateInvoiceRequest
	err     error
	block   chan struct{}
}

func (f *fakeInvoiceService) Create(ctx context.Context, req invoicedomain.CreateInvoiceRequest) (invoicedomain.Invoice, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return invoicedomain.Invoice{}, f.err
	}
	f.created = append(f.created, req)
	return invoicedomain.Invoice{Title: req.Title, TotalAmount: req.Total}, nil
}

func (f *fakeInvoiceService) List(ctx context.Context) ([]invoicedomain.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	return invoicedomain.Invoice{}, invoicedomain.ErrNotFound
}

func (f *fakeInvoiceService) Delete(ctx context.Context, id string) error { return nil }

func newTestComposer(invoices *fakeInvoiceService) *Composer {
	customers := []customerdomain.Customer{
		{Name: "acme"},
		{Name: "globex"},
	}
	return newComposer("owner-1", customers, invoices, zap.NewNop())
}

func TestComposerAddItemAcceptsValidInput(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})
	c.SetCustomer("acme")

	assert.NoError(t, c.SetInput(ItemInput{Name: "design", Cost: 10, Quantity: 3}))
	item, added := c.AddItem()

	assert.True(t, added)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "acme", item.CustomerName)
	assert.Equal(t, 30.0, item.Price)
	assert.Equal(t, 1, len(c.Items()))

	// Input clears after the accepted add.
	assert.Equal(t, ItemInput{}, c.State().Input)
}

func TestComposerAddItemRejectsAndClearsInput(t *testing.T) {
	cases := []ItemInput{
		{Name: "", Cost: 10, Quantity: 1},
		{Name: "thing", Cost: 0, Quantity: 1},
		{Name: "thing", Cost: 10, Quantity: 0},
		{Name: "   ", Cost: 10, Quantity: 1},
	}

	for _, input := range cases {
		c := newTestComposer(&fakeInvoiceService{})
		assert.NoError(t, c.SetInput(input))

		_, added := c.AddItem()
		assert.False(t, added)
		assert.Equal(t, 0, len(c.Items()))
		assert.Equal(t, ItemInput{}, c.State().Input)
	}
}

func TestComposerSetInputRejectsInvalidNumbers(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})

	assert.ErrorIs(t, c.SetInput(ItemInput{Name: "x", Cost: math.NaN(), Quantity: 1}), ErrInvalidCost)
	assert.ErrorIs(t, c.SetInput(ItemInput{Name: "x", Cost: 1, Quantity: -1}), ErrInvalidQuantity)
}

func TestComposerTotalTracksEdits(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})
	c.SetCustomer("acme")

	assert.NoError(t, c.SetInput(ItemInput{Name: "a", Cost: 10, Quantity: 1}))
	c.AddItem()
	assert.NoError(t, c.SetInput(ItemInput{Name: "b", Cost: 5, Quantity: 2}))
	c.AddItem()
	assert.Equal(t, 20.0, c.Total())

	items := c.Items()
	assert.NoError(t, c.StartEdit(items[0].ID))
	cost := 100.0
	assert.NoError(t, c.ChangeEdit(ItemDraftPatch{Cost: &cost}))
	assert.NoError(t, c.SaveEdit())
	assert.Equal(t, 110.0, c.Total())
}

func TestComposerDeleteItemIdempotent(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})
	assert.NoError(t, c.SetInput(ItemInput{Name: "a", Cost: 1, Quantity: 1}))
	item, _ := c.AddItem()

	c.DeleteItem(item.ID)
	c.DeleteItem(item.ID)
	assert.Equal(t, 0, len(c.Items()))
}

func TestComposerCancelEditDiscardsChanges(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})
	assert.NoError(t, c.SetInput(ItemInput{Name: "a", Cost: 10, Quantity: 1}))
	item, _ := c.AddItem()

	assert.NoError(t, c.StartEdit(item.ID))
	name := "renamed"
	assert.NoError(t, c.ChangeEdit(ItemDraftPatch{Name: &name}))
	c.CancelEdit()

	got := c.Items()[0]
	assert.Equal(t, "a", got.Name)
}

func TestComposerSubmitPersistsLiveTotal(t *testing.T) {
	invoices := &fakeInvoiceService{}
	c := newTestComposer(invoices)
	c.SetCustomer("acme")
	c.SetTitle("march retainer")

	assert.NoError(t, c.SetInput(ItemInput{Name: "design", Cost: 10, Quantity: 2}))
	c.AddItem()
	assert.NoError(t, c.SetInput(ItemInput{Name: "hosting", Cost: 5, Quantity: 2}))
	c.AddItem()

	invoice, err := c.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 30.0, invoice.TotalAmount)

	assert.Equal(t, 1, len(invoices.created))
	req := invoices.created[0]
	assert.Equal(t, "acme", req.CustomerName)
	assert.Equal(t, "march retainer", req.Title)
	assert.Equal(t, 30.0, req.Total)
	assert.Equal(t, 2, len(req.Items))
}

func TestComposerSubmitGuards(t *testing.T) {
	newReady := func() *Composer {
		c := newTestComposer(&fakeInvoiceService{})
		c.SetCustomer("acme")
		c.SetTitle("t")
		_ = c.SetInput(ItemInput{Name: "a", Cost: 1, Quantity: 1})
		c.AddItem()
		return c
	}

	c := newReady()
	c.SetCustomer("")
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrCustomerRequired)

	c = newReady()
	c.SetCustomer("nobody")
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrUnknownCustomer)

	c = newReady()
	c.SetTitle("  ")
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrTitleRequired)

	c = newTestComposer(&fakeInvoiceService{})
	c.SetCustomer("acme")
	c.SetTitle("t")
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoItems)

	c = newReady()
	_ = c.SetInput(ItemInput{Name: "half-typed", Cost: 0, Quantity: 0})
	_, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrPendingItemInput)
}

func TestComposerSubmitKeepsDraftOnFailure(t *testing.T) {
	invoices := &fakeInvoiceService{err: errors.New("db down")}
	c := newTestComposer(invoices)
	c.SetCustomer("acme")
	c.SetTitle("t")
	_ = c.SetInput(ItemInput{Name: "a", Cost: 10, Quantity: 1})
	c.AddItem()

	_, err := c.Submit(context.Background())
	assert.Error(t, err)

	// Nothing typed is lost and a retry can go through.
	assert.Equal(t, 1, len(c.Items()))
	invoices.mu.Lock()
	invoices.err = nil
	invoices.mu.Unlock()

	invoice, err := c.Submit(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 10.0, invoice.TotalAmount)
}

func TestComposerSecondSubmitWhileInFlight(t *testing.T) {
	invoices := &fakeInvoiceService{block: make(chan struct{})}
	c := newTestComposer(invoices)
	c.SetCustomer("acme")
	c.SetTitle("t")
	_ = c.SetInput(ItemInput{Name: "a", Cost: 1, Quantity: 1})
	c.AddItem()

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	// Wait until the first submit is marked in flight.
	for {
		c.mu.Lock()
		inFlight := c.submitting
		c.mu.Unlock()
		if inFlight {
			break
		}
	}

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(invoices.block)
	assert.NoError(t, <-done)
}

func TestComposerStateSnapshot(t *testing.T) {
	c := newTestComposer(&fakeInvoiceService{})
	c.SetCustomer("acme")
	c.SetTitle("snapshot")
	_ = c.SetInput(ItemInput{Name: "a", Cost: 1000, Quantity: 2})
	item, _ := c.AddItem()
	assert.NoError(t, c.StartEdit(item.ID))

	state := c.State()
	assert.Equal(t, "acme", state.Customer)
	assert.Equal(t, "snapshot", state.Title)
	assert.Equal(t, 2, len(state.Customers))
	assert.Equal(t, 2000.0, state.Total)
	assert.Equal(t, "2,000", state.TotalFormatted)
	assert.Equal(t, item.ID, state.EditingID)
	if assert.NotNil(t, state.EditDraft) {
		assert.Equal(t, "a", state.EditDraft.Name)
	}
}
