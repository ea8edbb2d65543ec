package pdfgen

import (
	"github.com/atlasdoors/backoffice/internal/domain/document"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Direction is the text/layout direction of a composed document.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

const (
	CurrencyEuro   = "€"
	CurrencyShekel = "₪"
)

// Layout is the fully resolved print layout of one document: every
// label translated, every amount formatted, column order fixed for the
// target direction. The renderer turns it into paginated PDF output
// without further decisions.
type Layout struct {
	Title          string    `json:"title"`
	Number         string    `json:"number"`
	NumberLabel    string    `json:"number_label"`
	Date           string    `json:"date"`
	DateLabel      string    `json:"date_label"`
	Direction      Direction `json:"direction"`
	CurrencySymbol string    `json:"currency_symbol"`

	Header HeaderBlock `json:"header"`
	BillTo BillToBlock `json:"bill_to"`

	// Columns and each row's Cells share one order; under RTL the
	// order is reversed so the description column hugs the right edge.
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`

	// Totals renders even when Rows is empty.
	Totals TotalsBlock `json:"totals"`

	Footer string `json:"footer"`
}

// HeaderBlock is the sender identity printed at the top of the page.
type HeaderBlock struct {
	Name       string `json:"name"`
	Subline    string `json:"subline"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	PhoneLabel string `json:"phone_label"`
	Email      string `json:"email"`
	EmailLabel string `json:"email_label"`
}

// BillToBlock is the client block.
type BillToBlock struct {
	Label   string `json:"label"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Column is one header cell of the line-item table.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Row carries display strings only; Cells is aligned with
// Layout.Columns. Numerals stay left-to-right even inside RTL flow —
// the renderer isolates them.
type Row struct {
	Cells []string `json:"cells"`
}

// TotalsBlock is the subtotal/tax/total summary. Total is the
// emphasized line.
type TotalsBlock struct {
	SubtotalLabel string `json:"subtotal_label"`
	Subtotal      string `json:"subtotal"`
	TaxLabel      string `json:"tax_label"`
	Tax           string `json:"tax"`
	TotalLabel    string `json:"total_label"`
	Total         string `json:"total"`
}

const (
	colDescription = "description"
	colQuantity    = "quantity"
	colUnitPrice   = "unit_price"
	colTotal       = "total"
)

// Compose arranges the print layout for one document. It is pure:
// same document and labels always yield the same layout, and a
// validation failure yields a single error with no partial layout.
func Compose(doc *document.Document, labels translation.Labels) (*Layout, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	totals := doc.ComputeTotals()

	direction := DirectionLTR
	currency := CurrencyEuro
	if doc.Language.IsRTL() {
		direction = DirectionRTL
		currency = CurrencyShekel
	}

	titleKey := translation.KeyInvoiceTitle
	if doc.Kind == types.DocumentKindQuote {
		titleKey = translation.KeyQuoteTitle
	}

	columns := []Column{
		{Key: colDescription, Label: label(labels, translation.KeyColDescription)},
		{Key: colQuantity, Label: label(labels, translation.KeyColQuantity)},
		{Key: colUnitPrice, Label: label(labels, translation.KeyColUnitPrice)},
		{Key: colTotal, Label: label(labels, translation.KeyColTotal)},
	}

	rows := make([]Row, 0, len(doc.Items))
	for _, item := range doc.Items {
		rows = append(rows, Row{Cells: []string{
			item.Description,
			formatQuantity(item.Quantity),
			formatAmount(item.UnitPrice, currency),
			formatAmount(item.Amount(), currency),
		}})
	}

	if direction == DirectionRTL {
		reverseColumns(columns)
		for i := range rows {
			reverseCells(rows[i].Cells)
		}
	}

	return &Layout{
		Title:          label(labels, titleKey),
		Number:         doc.Number,
		NumberLabel:    label(labels, translation.KeyNumber),
		Date:           doc.Date,
		DateLabel:      label(labels, translation.KeyDate),
		Direction:      direction,
		CurrencySymbol: currency,
		Header: HeaderBlock{
			Name:       doc.Sender.Name,
			Subline:    doc.Sender.Subline,
			Address:    doc.Sender.Address,
			City:       doc.Sender.City,
			Phone:      doc.Sender.Phone,
			PhoneLabel: label(labels, translation.KeyPhone),
			Email:      doc.Sender.Email,
			EmailLabel: label(labels, translation.KeyEmail),
		},
		BillTo: BillToBlock{
			Label:   label(labels, translation.KeyBillTo),
			Name:    doc.Client.Name,
			Address: doc.Client.Address,
			Email:   doc.Client.Email,
		},
		Columns: columns,
		Rows:    rows,
		Totals: TotalsBlock{
			SubtotalLabel: label(labels, translation.KeySubtotal),
			Subtotal:      formatAmount(totals.Subtotal, currency),
			TaxLabel:      label(labels, translation.KeyTax) + " (" + formatRate(doc.TaxRate) + "%)",
			Tax:           formatAmount(totals.Tax, currency),
			TotalLabel:    label(labels, translation.KeyTotal),
			Total:         formatAmount(totals.Total, currency),
		},
		Footer: footerText(doc, labels),
	}, nil
}

// label resolves a key against the provided labels, falling back to
// the built-in French default so missing keys never render empty.
func label(labels translation.Labels, key string) string {
	if v, ok := labels[key]; ok && v != "" {
		return v
	}
	return translation.DefaultDictionary()[types.LanguageDefault][key]
}

func footerText(doc *document.Document, labels translation.Labels) string {
	if doc.Sender.Footer != "" {
		return doc.Sender.Footer
	}
	return label(labels, translation.KeyFooterText)
}

// formatAmount rounds half away from zero to two decimals, display
// only. Internal arithmetic is never rounded.
func formatAmount(v decimal.Decimal, currency string) string {
	return v.StringFixed(2) + " " + currency
}

// formatQuantity keeps integral quantities short and passes
// non-integer quantities through untouched.
func formatQuantity(q decimal.Decimal) string {
	if q.IsInteger() {
		return q.StringFixed(0)
	}
	return q.String()
}

func formatRate(r decimal.Decimal) string {
	if r.IsInteger() {
		return r.StringFixed(0)
	}
	return r.String()
}

func reverseColumns(cols []Column) {
	for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
		cols[i], cols[j] = cols[j], cols[i]
	}
}

func reverseCells(cells []string) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}
