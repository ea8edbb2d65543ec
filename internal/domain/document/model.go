package document

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Document is the invoice/quote value object handed to the composer.
// Totals are derived from Items and TaxRate, never stored on it.
type Document struct {
	Number   string             `json:"number"`
	Kind     types.DocumentKind `json:"kind"`
	Date     string             `json:"date"`
	Client   Client             `json:"client"`
	Sender   Sender             `json:"sender"`
	Items    []LineItem         `json:"items"`
	TaxRate  decimal.Decimal    `json:"tax_rate"`
	Language types.Language     `json:"language"`
}

// Client is the bill-to party.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Sender is the issuing company identity printed in the header.
type Sender struct {
	Name    string `json:"name"`
	Subline string `json:"subline"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Footer  string `json:"footer"`
}

// LineItem is one row of the document table. Quantity is accepted as a
// decimal; the form producing items owns range validation.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Amount returns quantity times unit price without rounding.
func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Totals are pure functions of the items and tax rate. Rounding to two
// decimals happens only at display time.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals accumulates unrounded so rounding error never
// compounds across line items. Empty items yield all zeros.
func (d *Document) ComputeTotals() Totals {
	subtotal := decimal.Zero
	for _, item := range d.Items {
		subtotal = subtotal.Add(item.Amount())
	}

	tax := subtotal.Mul(d.TaxRate).Div(decimal.NewFromInt(100))

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Validate checks the fields composition cannot proceed without. It
// deliberately puts no upper bound on quantities or prices.
func (d *Document) Validate() error {
	if d.Number == "" {
		return ierr.NewError("document number is required").
			WithHint("Document number is required").
			Mark(ierr.ErrValidation)
	}
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if d.Date == "" {
		return ierr.NewError("document date is required").
			WithHint("Document date is required").
			Mark(ierr.ErrValidation)
	}
	if d.Client.Name == "" {
		return ierr.NewError("client name is required").
			WithHint("Client name is required").
			Mark(ierr.ErrValidation)
	}
	if d.Sender.Name == "" {
		return ierr.NewError("sender name is required").
			WithHint("Sender name is required").
			Mark(ierr.ErrValidation)
	}
	if err := d.Language.Validate(); err != nil {
		return err
	}
	if d.TaxRate.IsNegative() {
		return ierr.NewError("tax rate must not be negative").
			WithHint("Tax rate must not be negative").
			Mark(ierr.ErrValidation)
	}
	for i, item := range d.Items {
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			return ierr.NewError("line item amounts must not be negative").
				WithHint("Line item quantity and unit price must not be negative").
				WithReportableDetails(map[string]any{
					"item_index": i,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
