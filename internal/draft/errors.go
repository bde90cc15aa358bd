package draft

import "errors"

var (
	ErrBankInfoRequired = errors.New("bank_info_required")
	ErrNoSession        = errors.New("no_draft_session")

	ErrEditInProgress  = errors.New("edit_in_progress")
	ErrNotEditing      = errors.New("not_editing")
	ErrUnknownItem     = errors.New("unknown_item")
	ErrInvalidCost     = errors.New("invalid_cost")
	ErrInvalidQuantity = errors.New("invalid_quantity")

	ErrCustomerRequired = errors.New("customer_required")
	ErrUnknownCustomer  = errors.New("unknown_customer")
	ErrTitleRequired    = errors.New("title_required")
	ErrNoItems          = errors.New("no_items")
	ErrPendingItemInput = errors.New("pending_item_input")
	ErrSubmitInFlight   = errors.New("submit_in_flight")
)
