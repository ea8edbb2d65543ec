package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/atlasdoors/backoffice/internal/domain/document"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/pdfgen"
	"github.com/atlasdoors/backoffice/internal/types"
)

const documentTemplateFile = "document.typ"

// DocumentService turns an invoice or quote into a print-ready layout
// and, through the typst renderer, into PDF bytes.
type DocumentService interface {
	// ComposeLayout resolves the document's language labels and
	// produces the fully computed, direction-aware layout.
	ComposeLayout(ctx context.Context, doc *document.Document) (*pdfgen.Layout, error)

	// GeneratePDF composes the layout and compiles it to PDF bytes.
	GeneratePDF(ctx context.Context, doc *document.Document) ([]byte, error)
}

type documentService struct {
	ServiceParams
	translationService TranslationService
}

func NewDocumentService(params ServiceParams) DocumentService {
	return &documentService{
		ServiceParams:      params,
		translationService: NewTranslationService(params),
	}
}

func (s *documentService) ComposeLayout(ctx context.Context, doc *document.Document) (*pdfgen.Layout, error) {
	if doc == nil {
		return nil, ierr.NewError("document is required").
			WithHint("Document payload is missing").
			Mark(ierr.ErrValidation)
	}

	if doc.Number == "" {
		doc.Number = s.generateNumber(doc.Kind)
	}

	labels, err := s.translationService.GetLanguage(ctx, doc.Language)
	if err != nil {
		return nil, err
	}

	layout, err := pdfgen.Compose(doc, labels)
	if err != nil {
		return nil, err
	}

	s.Logger.Debugw("composed document layout",
		"number", layout.Number,
		"kind", doc.Kind,
		"language", doc.Language,
		"direction", layout.Direction,
		"rows", len(layout.Rows),
	)

	return layout, nil
}

func (s *documentService) GeneratePDF(ctx context.Context, doc *document.Document) ([]byte, error) {
	layout, err := s.ComposeLayout(ctx, doc)
	if err != nil {
		return nil, err
	}

	templatePath := filepath.Join(s.Config.Pdf.TemplateDir, documentTemplateFile)

	typPath, err := s.PdfRenderer.PrepareTemplate(templatePath, layout)
	if err != nil {
		return nil, err
	}
	defer os.Remove(typPath)

	pdfBytes, err := s.PdfRenderer.CompileTemplate(layout.Number, typPath, s.Config.Pdf.FontDir)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("generated document pdf",
		"number", layout.Number,
		"kind", doc.Kind,
		"bytes", len(pdfBytes),
	)

	return pdfBytes, nil
}

func (s *documentService) generateNumber(kind types.DocumentKind) string {
	if kind == types.DocumentKindQuote {
		return types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_QUOTE)
	}
	return types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE)
}
