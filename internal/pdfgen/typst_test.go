package pdfgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdoors/backoffice/internal/logger"
)

func TestTypstEscape(t *testing.T) {
	assert.Equal(t, `a \"quoted\" value`, typstEscape(`a "quoted" value`))
	assert.Equal(t, `back\\slash`, typstEscape(`back\slash`))
	assert.Equal(t, "plain", typstEscape("plain"))
}

func TestPrepareTemplate(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "document.typ")
	template := `#text[{{esc .Title}} {{esc .Number}}]`
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0o644))

	r := NewTypstRenderer(logger.GetLogger())
	layout := &Layout{Title: `Facture "été"`, Number: "INV-1"}

	typPath, err := r.PrepareTemplate(templatePath, layout)
	require.NoError(t, err)
	defer os.Remove(typPath)

	assert.Equal(t, filepath.Join(dir, "document-INV-1.typ"), typPath)

	content, err := os.ReadFile(typPath)
	require.NoError(t, err)
	assert.Equal(t, `#text[Facture \"été\" INV-1]`, string(content))
}

func TestPrepareTemplateMissingFile(t *testing.T) {
	r := NewTypstRenderer(logger.GetLogger())
	_, err := r.PrepareTemplate(filepath.Join(t.TempDir(), "missing.typ"), &Layout{Number: "X"})
	assert.Error(t, err)
}
