package postgres

import (
	"context"
	"encoding/json"

	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

// translationDocumentID is the fixed identifier of the single
// dictionary document.
const translationDocumentID = "labels"

type translationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewTranslationRepository creates a new instance of translation repository
func NewTranslationRepository(db *postgres.DB, logger *logger.Logger) translation.Repository {
	return &translationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *translationRepository) Get(ctx context.Context) (translation.Dictionary, error) {
	query := `
		SELECT dictionary FROM translations
		WHERE id = :id`

	params := map[string]interface{}{
		"id": translationDocumentID,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query translation dictionary").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("translation dictionary not found").
			WithHint("No translation dictionary has been stored yet").
			Mark(ierr.ErrNotFound)
	}

	var raw []byte
	if err := rows.Scan(&raw); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to scan translation dictionary").
			Mark(ierr.ErrDatabase)
	}

	var dict translation.Dictionary
	if err := json.Unmarshal(raw, &dict); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to decode translation dictionary").
			Mark(ierr.ErrDatabase)
	}

	return dict, nil
}

func (r *translationRepository) Replace(ctx context.Context, dict translation.Dictionary) error {
	raw, err := json.Marshal(dict)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to encode translation dictionary").
			Mark(ierr.ErrSystem)
	}

	query := `
		INSERT INTO translations (id, dictionary, updated_at)
		VALUES (:id, :dictionary, NOW())
		ON CONFLICT (id) DO UPDATE
		SET dictionary = EXCLUDED.dictionary, updated_at = NOW()`

	params := map[string]interface{}{
		"id":         translationDocumentID,
		"dictionary": raw,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to store translation dictionary").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *translationRepository) ReplaceLanguage(ctx context.Context, lang types.Language, labels translation.Labels) error {
	raw, err := json.Marshal(labels)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to encode language labels").
			Mark(ierr.ErrSystem)
	}

	r.logger.Debugw("replacing language dictionary",
		"language", lang,
		"keys", len(labels),
	)

	// jsonb_set touches only the given language's key set; other
	// languages stay byte-for-byte unchanged.
	query := `
		INSERT INTO translations (id, dictionary, updated_at)
		VALUES (:id, jsonb_build_object(:lang::text, :labels::jsonb), NOW())
		ON CONFLICT (id) DO UPDATE
		SET dictionary = jsonb_set(translations.dictionary, ARRAY[:lang::text], :labels::jsonb),
		    updated_at = NOW()`

	params := map[string]interface{}{
		"id":     translationDocumentID,
		"lang":   string(lang),
		"labels": raw,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to store language labels").
			WithReportableDetails(map[string]any{
				"language": lang,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}
