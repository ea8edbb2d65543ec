package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasdoors/backoffice/internal/api/dto"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/service"
)

type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		log:     log,
	}
}

// ComposeDocument godoc
// @Summary Compose a document layout
// @Description Compute totals and produce the direction-aware layout for an invoice or quote
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateDocumentRequest true "Document payload"
// @Success 200 {object} pdfgen.Layout
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /documents/compose [post]
func (h *DocumentHandler) ComposeDocument(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	layout, err := h.service.ComposeLayout(c.Request.Context(), req.ToDocument())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, layout)
}

// GenerateDocumentPDF godoc
// @Summary Generate a document PDF
// @Description Compose and compile an invoice or quote into a PDF
// @Tags Documents
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body dto.GenerateDocumentRequest true "Document payload"
// @Success 200 {file} application/pdf
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /documents/pdf [post]
func (h *DocumentHandler) GenerateDocumentPDF(c *gin.Context) {
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	doc := req.ToDocument()
	pdfBytes, err := h.service.GeneratePDF(c.Request.Context(), doc)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", doc.Number))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
