package dto

import (
	"github.com/atlasdoors/backoffice/internal/domain/translation"
)

// UpdateTranslationsRequest replaces one language's full label set.
type UpdateTranslationsRequest struct {
	Labels map[string]string `json:"labels" binding:"required"`
}

func (r *UpdateTranslationsRequest) ToLabels() translation.Labels {
	return translation.Labels(r.Labels)
}
