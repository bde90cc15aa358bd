package draft

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
)

// LineAmount derives a row's amount from live cost and quantity, never
// the stored price.
func LineAmount(item invoicedomain.LineItem) float64 {
	return item.Cost * float64(item.Quantity)
}

// Total sums LineAmount over the sequence. A stale stored price on any
// row does not affect the result.
func Total(items []invoicedomain.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += LineAmount(item)
	}
	return total
}

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount with thousands grouping. The currency
// symbol is the presentation layer's concern; it comes from bank info.
func FormatAmount(value float64) string {
	return amountPrinter.Sprintf("%v", number.Decimal(value))
}
