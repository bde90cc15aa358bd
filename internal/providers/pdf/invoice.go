package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	bankinfodomain "github.com/paperbill/paperbill/internal/bankinfo/domain"
	"github.com/paperbill/paperbill/internal/draft"
	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice invoicedomain.Invoice, bank *bankinfodomain.BankInfo) (io.Reader, error) {
	_ = ctx

	items, err := invoice.LineItems()
	if err != nil {
		return nil, fmt.Errorf("decode invoice items: %w", err)
	}

	currency := ""
	if bank != nil {
		currency = bank.Currency + " "
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, invoice.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.ID.String(), props.Text{Top: 0}),
			text.New("Date of issue: "+invoice.CreatedAt.Format("2006-01-02"), props.Text{Top: 4}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.CustomerName, props.Text{Top: 5}),
		),
	)

	if bank != nil {
		m.AddRow(25,
			text.NewCol(12, fmt.Sprintf("%s | %s | %s", bank.BankName, bank.AccountName, bank.AccountNumber), props.Text{
				Size: 9,
				Top:  0,
			}),
		)
	}

	// Table Header
	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range items {
		m.AddRow(15,
			text.NewCol(6, item.Name, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, currency+draft.FormatAmount(item.Cost), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, currency+draft.FormatAmount(item.Price), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, currency+draft.FormatAmount(invoice.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
