package testutil

import (
	"fmt"

	"github.com/atlasdoors/backoffice/internal/pdfgen"
)

var _ pdfgen.DocumentRenderer = (*MockDocumentRenderer)(nil)

// MockDocumentRenderer skips typst entirely and records what it was
// asked to render.
type MockDocumentRenderer struct {
	PreparedLayouts []*pdfgen.Layout
	CompileErr      error
}

func NewMockDocumentRenderer() *MockDocumentRenderer {
	return &MockDocumentRenderer{}
}

func (m *MockDocumentRenderer) PrepareTemplate(templatePath string, layout *pdfgen.Layout) (string, error) {
	m.PreparedLayouts = append(m.PreparedLayouts, layout)
	return fmt.Sprintf("document-%s.typ", layout.Number), nil
}

func (m *MockDocumentRenderer) CompileTemplate(id, templatePath string, fontDir string) ([]byte, error) {
	if m.CompileErr != nil {
		return nil, m.CompileErr
	}
	return []byte("%PDF-" + id), nil
}
