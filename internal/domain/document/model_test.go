package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/atlasdoors/backoffice/internal/types"
)

func TestLineItemAmount(t *testing.T) {
	item := LineItem{
		Quantity:  decimal.NewFromFloat(2.5),
		UnitPrice: decimal.NewFromFloat(10.10),
	}
	assert.True(t, item.Amount().Equal(decimal.NewFromFloat(25.25)))
}

func TestComputeTotals(t *testing.T) {
	doc := &Document{
		Items: []LineItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(450.50)},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(150.00)},
		},
		TaxRate: decimal.NewFromInt(20),
	}

	totals := doc.ComputeTotals()
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(1051.00)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(210.20)))
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(1261.20)))
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	doc := &Document{TaxRate: decimal.NewFromInt(20)}

	totals := doc.ComputeTotals()
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestValidate(t *testing.T) {
	doc := &Document{
		Number:   "INV-1",
		Kind:     types.DocumentKindInvoice,
		Date:     "2026-08-15",
		Client:   Client{Name: "Client"},
		Sender:   Sender{Name: "Atlas Doors"},
		Language: types.LanguageFrench,
	}
	assert.NoError(t, doc.Validate())

	doc.Kind = "receipt"
	assert.Error(t, doc.Validate())
}

func TestValidateAllowsZeroQuantity(t *testing.T) {
	doc := &Document{
		Number:   "INV-1",
		Kind:     types.DocumentKindInvoice,
		Date:     "2026-08-15",
		Client:   Client{Name: "Client"},
		Sender:   Sender{Name: "Atlas Doors"},
		Language: types.LanguageFrench,
		Items: []LineItem{
			{Description: "placeholder", Quantity: decimal.Zero, UnitPrice: decimal.Zero},
		},
	}
	assert.NoError(t, doc.Validate())
}
