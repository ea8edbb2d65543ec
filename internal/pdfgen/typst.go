package pdfgen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
)

// TypstRenderer handles rendering Typst templates
type TypstRenderer struct {
	log *logger.Logger
}

// NewTypstRenderer creates a new Typst renderer
func NewTypstRenderer(log *logger.Logger) DocumentRenderer {
	return &TypstRenderer{log: log}
}

// typstEscape neutralizes Typst markup in user-supplied strings.
func typstEscape(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
	)
	return replacer.Replace(s)
}

// PrepareTemplate fills the document template with the composed layout
// and writes a temporary .typ file next to the template.
func (r *TypstRenderer) PrepareTemplate(templatePath string, layout *Layout) (string, error) {
	templateContent, err := os.ReadFile(templatePath)
	if err != nil {
		return "", ierr.WithError(err).WithMessage("failed to read template file").Mark(ierr.ErrSystem)
	}

	templateDir := filepath.Dir(templatePath)
	typPath := filepath.Join(templateDir, fmt.Sprintf("document-%s.typ", layout.Number))

	tmpl, err := template.New("document").
		Funcs(template.FuncMap{"esc": typstEscape}).
		Parse(string(templateContent))
	if err != nil {
		return "", ierr.WithError(err).WithMessage("failed to parse template").Mark(ierr.ErrSystem)
	}

	f, err := os.Create(typPath)
	if err != nil {
		return "", ierr.WithError(err).WithMessage("failed to create temp file").Mark(ierr.ErrSystem)
	}
	defer f.Close()

	if err := tmpl.Execute(f, layout); err != nil {
		return "", ierr.WithError(err).WithMessage("failed to render template").Mark(ierr.ErrSystem)
	}

	return typPath, nil
}

// CompileTemplate compiles a prepared .typ file into a PDF
func (r *TypstRenderer) CompileTemplate(id, templatePath string, fontDir string) ([]byte, error) {
	dir := filepath.Dir(templatePath)
	pdfPath := filepath.Join(dir, fmt.Sprintf("document-%s.pdf", id))
	defer func() {
		os.Remove(pdfPath)
	}()

	args := []string{
		"compile",
		templatePath,
	}

	if fontDir != "" {
		args = append(args, "--font-path", fontDir)
	}

	typstBinaryPath, err := exec.LookPath("typst")
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to find typst binary").Mark(ierr.ErrSystem)
	}

	cmd := exec.Command(typstBinaryPath, args...)
	r.log.Debugw("compiling document", "command", cmd.String())
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to compile document template").
			WithReportableDetails(map[string]any{
				"output": string(out),
			}).
			Mark(ierr.ErrSystem)
	}

	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to read compiled PDF").Mark(ierr.ErrSystem)
	}

	return pdfBytes, nil
}
