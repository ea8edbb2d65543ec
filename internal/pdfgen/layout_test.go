package pdfgen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdoors/backoffice/internal/domain/document"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

func sampleDocument(lang types.Language) *document.Document {
	return &document.Document{
		Number: "INV-2001",
		Kind:   types.DocumentKindInvoice,
		Date:   "2026-08-15",
		Client: document.Client{Name: "M. Dupont"},
		Sender: document.Sender{Name: "Atlas Doors"},
		Items: []document.LineItem{
			{Description: "Porte blindée", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(450.50)},
			{Description: "Installation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(150.00)},
		},
		TaxRate:  decimal.NewFromInt(20),
		Language: lang,
	}
}

func frenchLabels() translation.Labels {
	return translation.DefaultDictionary().Resolve(types.LanguageFrench)
}

func hebrewLabels() translation.Labels {
	return translation.DefaultDictionary().Resolve(types.LanguageHebrew)
}

func TestComposeTotals(t *testing.T) {
	layout, err := Compose(sampleDocument(types.LanguageFrench), frenchLabels())
	require.NoError(t, err)

	// 2 x 450.50 + 150.00 = 1051.00, tax 20% = 210.20
	assert.Equal(t, "1051.00 €", layout.Totals.Subtotal)
	assert.Equal(t, "210.20 €", layout.Totals.Tax)
	assert.Equal(t, "1261.20 €", layout.Totals.Total)
	assert.Contains(t, layout.Totals.TaxLabel, "20%")
}

func TestComposeRoundingIsDisplayOnly(t *testing.T) {
	doc := sampleDocument(types.LanguageFrench)
	// Three items of 1/3 each: displayed rows round to 0.33 but the
	// subtotal accumulates unrounded thirds.
	third := decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	doc.Items = []document.LineItem{
		{Description: "a", Quantity: decimal.NewFromInt(1), UnitPrice: third},
		{Description: "b", Quantity: decimal.NewFromInt(1), UnitPrice: third},
		{Description: "c", Quantity: decimal.NewFromInt(1), UnitPrice: third},
	}
	doc.TaxRate = decimal.Zero

	layout, err := Compose(doc, frenchLabels())
	require.NoError(t, err)

	assert.Equal(t, "0.33 €", layout.Rows[0].Cells[3])
	assert.Equal(t, "1.00 €", layout.Totals.Subtotal)
}

func TestComposeEmptyItems(t *testing.T) {
	doc := sampleDocument(types.LanguageFrench)
	doc.Items = nil

	layout, err := Compose(doc, frenchLabels())
	require.NoError(t, err)

	assert.Empty(t, layout.Rows)
	assert.Equal(t, "0.00 €", layout.Totals.Subtotal)
	assert.Equal(t, "0.00 €", layout.Totals.Total)
}

func TestComposeDirectionAndCurrency(t *testing.T) {
	fr, err := Compose(sampleDocument(types.LanguageFrench), frenchLabels())
	require.NoError(t, err)
	assert.Equal(t, DirectionLTR, fr.Direction)
	assert.Equal(t, CurrencyEuro, fr.CurrencySymbol)

	he, err := Compose(sampleDocument(types.LanguageHebrew), hebrewLabels())
	require.NoError(t, err)
	assert.Equal(t, DirectionRTL, he.Direction)
	assert.Equal(t, CurrencyShekel, he.CurrencySymbol)
}

func TestComposeRTLReversesColumnsAndCells(t *testing.T) {
	layout, err := Compose(sampleDocument(types.LanguageHebrew), hebrewLabels())
	require.NoError(t, err)

	require.Len(t, layout.Columns, 4)
	assert.Equal(t, colTotal, layout.Columns[0].Key)
	assert.Equal(t, colDescription, layout.Columns[3].Key)

	// Cells follow the column order: description lands last.
	assert.Equal(t, "Porte blindée", layout.Rows[0].Cells[3])
}

func TestComposeQuoteTitle(t *testing.T) {
	doc := sampleDocument(types.LanguageFrench)
	doc.Kind = types.DocumentKindQuote

	layout, err := Compose(doc, frenchLabels())
	require.NoError(t, err)
	assert.Equal(t, "Devis", layout.Title)
}

func TestComposeLabelFallbackToFrench(t *testing.T) {
	// A sparse label set: every missing key resolves to the French
	// built-in default instead of rendering empty.
	layout, err := Compose(sampleDocument(types.LanguageFrench), translation.Labels{})
	require.NoError(t, err)

	assert.Equal(t, "Facture", layout.Title)
	assert.NotEmpty(t, layout.BillTo.Label)
	for _, col := range layout.Columns {
		assert.NotEmpty(t, col.Label)
	}
}

func TestComposeValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*document.Document)
	}{
		{"missing number", func(d *document.Document) { d.Number = "" }},
		{"missing kind", func(d *document.Document) { d.Kind = "" }},
		{"missing date", func(d *document.Document) { d.Date = "" }},
		{"missing client name", func(d *document.Document) { d.Client.Name = "" }},
		{"missing sender name", func(d *document.Document) { d.Sender.Name = "" }},
		{"invalid language", func(d *document.Document) { d.Language = "de" }},
		{"negative tax rate", func(d *document.Document) { d.TaxRate = decimal.NewFromInt(-1) }},
		{"negative quantity", func(d *document.Document) { d.Items[0].Quantity = decimal.NewFromInt(-2) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleDocument(types.LanguageFrench)
			tc.mutate(doc)

			layout, err := Compose(doc, frenchLabels())
			require.Error(t, err)
			assert.Nil(t, layout)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestComposeIsPure(t *testing.T) {
	a, err := Compose(sampleDocument(types.LanguageHebrew), hebrewLabels())
	require.NoError(t, err)
	b, err := Compose(sampleDocument(types.LanguageHebrew), hebrewLabels())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
