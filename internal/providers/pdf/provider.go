// Package pdf renders stored invoices into printable documents.
package pdf

import (
	"context"
	"io"

	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"go.uber.org/fx"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, invoice invoicedomain.Invoice, bank *bankinfodomain.BankInfo) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
