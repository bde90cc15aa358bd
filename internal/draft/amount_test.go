package draft

import (
	"testing"

	invoicedomain "github.com/paperbill/paperbill/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func TestLineAmountDerivesFromLiveFields(t *testing.T) {
	item := invoicedomain.LineItem{
		Name:     "hosting",
		Cost:     10,
		Quantity: 3,
		Price:    999, // stale on purpose
	}

	assert.Equal(t, 30.0, LineAmount(item))
}

func TestTotalIgnoresStalePrice(t *testing.T) {
	items := []invoicedomain.LineItem{
		{Name: "a", Cost: 10, Quantity: 1, Price: 10},
		{Name: "b", Cost: 5, Quantity: 4, Price: 1}, // stale
	}

	assert.Equal(t, 30.0, Total(items))
}

func TestTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Total(nil))
}

func TestFormatAmountGroupsThousands(t *testing.T) {
	assert.Equal(t, "1,250", FormatAmount(1250))
	assert.Equal(t, "1,250.5", FormatAmount(1250.5))
	assert.Equal(t, "0", FormatAmount(0))
}
