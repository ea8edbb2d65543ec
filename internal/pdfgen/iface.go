package pdfgen

// DocumentRenderer turns a composed layout into a printable PDF.
type DocumentRenderer interface {
	PrepareTemplate(templatePath string, layout *Layout) (string, error)
	CompileTemplate(id, templatePath, fontDir string) ([]byte, error)
}
