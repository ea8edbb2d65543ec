package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/domain/document"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/pdfgen"
	"github.com/atlasdoors/backoffice/internal/testutil"
	"github.com/atlasdoors/backoffice/internal/types"
)

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentService
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewDocumentService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		TransRepo:   stores.TransRepo,
		LedgerRepo:  stores.LedgerRepo,
		ProductRepo: stores.ProductRepo,
		AuditRepo:   stores.AuditRepo,
		MessageRepo: stores.MessageRepo,
		EmailSender: s.GetEmailSender(),
		PdfRenderer: s.GetRenderer(),
	})
}

func (s *DocumentServiceSuite) sampleDocument(lang types.Language) *document.Document {
	return &document.Document{
		Number:   "INV-1001",
		Kind:     types.DocumentKindInvoice,
		Date:     "2026-08-15",
		Client:   document.Client{Name: "M. Dupont", Address: "12 rue des Lilas", Email: "dupont@example.com"},
		Sender:   document.Sender{Name: "Atlas Doors", Phone: "+33 1 23 45 67 89", Email: "office@atlasdoors.example"},
		Items:    []document.LineItem{{Description: "Porte blindée", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(450.50)}},
		TaxRate:  decimal.NewFromInt(20),
		Language: lang,
	}
}

func (s *DocumentServiceSuite) TestComposeLayoutUsesStoredLabels() {
	err := s.GetStores().TransRepo.(*testutil.InMemoryTranslationStore).Replace(s.GetContext(), translation.Dictionary{
		types.LanguageFrench: {translation.KeyInvoiceTitle: "Facture maison"},
	})
	s.NoError(err)

	layout, err := s.service.ComposeLayout(s.GetContext(), s.sampleDocument(types.LanguageFrench))
	s.NoError(err)
	s.Equal("Facture maison", layout.Title)
	s.Equal(pdfgen.DirectionLTR, layout.Direction)
	s.Equal(pdfgen.CurrencyEuro, layout.CurrencySymbol)
	s.Equal("901.00 €", layout.Totals.Subtotal)
	s.Equal("1081.20 €", layout.Totals.Total)
}

func (s *DocumentServiceSuite) TestComposeLayoutHebrewIsRTL() {
	layout, err := s.service.ComposeLayout(s.GetContext(), s.sampleDocument(types.LanguageHebrew))
	s.NoError(err)
	s.Equal(pdfgen.DirectionRTL, layout.Direction)
	s.Equal(pdfgen.CurrencyShekel, layout.CurrencySymbol)
	// Column order is reversed; description hugs the right edge.
	s.Equal("total", layout.Columns[0].Key)
	s.Equal("description", layout.Columns[len(layout.Columns)-1].Key)
}

func (s *DocumentServiceSuite) TestComposeLayoutGeneratesNumberWhenAbsent() {
	doc := s.sampleDocument(types.LanguageFrench)
	doc.Number = ""
	doc.Kind = types.DocumentKindQuote

	layout, err := s.service.ComposeLayout(s.GetContext(), doc)
	s.NoError(err)
	s.Contains(layout.Number, "QT-")
}

func (s *DocumentServiceSuite) TestComposeLayoutRejectsInvalidDocument() {
	doc := s.sampleDocument(types.LanguageFrench)
	doc.Client.Name = ""

	_, err := s.service.ComposeLayout(s.GetContext(), doc)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestGeneratePDFRendersComposedLayout() {
	pdfBytes, err := s.service.GeneratePDF(s.GetContext(), s.sampleDocument(types.LanguageFrench))
	s.NoError(err)
	s.NotEmpty(pdfBytes)

	renderer := s.GetRenderer()
	s.Len(renderer.PreparedLayouts, 1)
	s.Equal("INV-1001", renderer.PreparedLayouts[0].Number)
}
