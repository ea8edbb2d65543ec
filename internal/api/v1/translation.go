package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasdoors/backoffice/internal/api/dto"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/service"
	"github.com/atlasdoors/backoffice/internal/types"
)

type TranslationHandler struct {
	service service.TranslationService
	log     *logger.Logger
}

func NewTranslationHandler(service service.TranslationService, log *logger.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		log:     log,
	}
}

// GetTranslations godoc
// @Summary Get the full label dictionary
// @Description Get the stored label dictionary for all languages
// @Tags Translations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} translation.Dictionary
// @Failure 500 {object} ierr.ErrorResponse
// @Router /translations [get]
func (h *TranslationHandler) GetTranslations(c *gin.Context) {
	dict, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dict)
}

// GetLanguage godoc
// @Summary Get resolved labels for one language
// @Description Get one language's label set with missing keys filled from defaults
// @Tags Translations
// @Produce json
// @Security BearerAuth
// @Param lang path string true "Language code"
// @Success 200 {object} translation.Labels
// @Failure 400 {object} ierr.ErrorResponse
// @Router /translations/{lang} [get]
func (h *TranslationHandler) GetLanguage(c *gin.Context) {
	lang := types.Language(c.Param("lang"))

	labels, err := h.service.GetLanguage(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, labels)
}

// UpdateLanguage godoc
// @Summary Replace one language's labels
// @Description Replace one language's full label set without touching other languages
// @Tags Translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lang path string true "Language code"
// @Param request body dto.UpdateTranslationsRequest true "Label set"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ierr.ErrorResponse
// @Router /translations/{lang} [put]
func (h *TranslationHandler) UpdateLanguage(c *gin.Context) {
	lang := types.Language(c.Param("lang"))

	var req dto.UpdateTranslationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.UpdateLanguage(c.Request.Context(), lang, req.ToLabels()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Labels updated successfully"})
}
