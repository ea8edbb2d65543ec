package service

import (
	"context"
	"time"

	"github.com/atlasdoors/backoffice/internal/cache"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

const translationCacheExpiry = 30 * time.Minute

// TranslationService serves the label dictionary used across document
// rendering and the admin UI. Reads never fail hard: when the store is
// unreachable the built-in defaults are served instead.
type TranslationService interface {
	// GetAll returns the full stored dictionary, seeding the built-in
	// defaults on first use.
	GetAll(ctx context.Context) (translation.Dictionary, error)

	// GetLanguage returns the fully resolved label set for one
	// language, with missing keys filled from defaults.
	GetLanguage(ctx context.Context, lang types.Language) (translation.Labels, error)

	// UpdateLanguage replaces one language's label set wholesale.
	// Other languages are untouched.
	UpdateLanguage(ctx context.Context, lang types.Language, labels translation.Labels) error
}

type translationService struct {
	ServiceParams
}

func NewTranslationService(params ServiceParams) TranslationService {
	return &translationService{
		ServiceParams: params,
	}
}

func (s *translationService) GetAll(ctx context.Context) (translation.Dictionary, error) {
	cacheKey := cache.GenerateKey(cache.PrefixTranslation, "dictionary")
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if dict, ok := cached.(translation.Dictionary); ok {
			return dict.Clone(), nil
		}
	}

	dict, err := s.TransRepo.Get(ctx)
	if err != nil {
		if ierr.IsNotFound(err) {
			return s.seedDefaults(ctx)
		}

		// A broken store must not take document generation down with
		// it. Serve defaults and leave the error in the logs.
		s.Logger.Errorw("falling back to default labels, dictionary store unavailable",
			"error", err,
		)
		return translation.DefaultDictionary(), nil
	}

	s.Cache.Set(ctx, cacheKey, dict.Clone(), translationCacheExpiry)
	return dict, nil
}

func (s *translationService) GetLanguage(ctx context.Context, lang types.Language) (translation.Labels, error) {
	if err := lang.Validate(); err != nil {
		return nil, err
	}

	dict, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return dict.Resolve(lang), nil
}

func (s *translationService) UpdateLanguage(ctx context.Context, lang types.Language, labels translation.Labels) error {
	if err := lang.Validate(); err != nil {
		return err
	}

	if len(labels) == 0 {
		return ierr.NewError("labels must not be empty").
			WithHint("Provide at least one label for the language").
			Mark(ierr.ErrValidation)
	}

	for key, value := range labels {
		if key == "" {
			return ierr.NewError("label key must not be empty").
				WithHint("Label keys must be non-empty strings").
				Mark(ierr.ErrValidation)
		}
		if value == "" {
			return ierr.NewError("label value must not be empty").
				WithHint("Label values must be non-empty strings").
				WithReportableDetails(map[string]any{
					"key": key,
				}).
				Mark(ierr.ErrValidation)
		}
	}

	if err := s.TransRepo.ReplaceLanguage(ctx, lang, labels); err != nil {
		return err
	}

	s.Logger.Infow("updated language labels",
		"language", lang,
		"keys", len(labels),
	)

	s.Cache.DeleteByPrefix(ctx, cache.PrefixTranslation)
	return nil
}

// seedDefaults stores the built-in dictionary on first read so the
// admin UI always has something to edit.
func (s *translationService) seedDefaults(ctx context.Context) (translation.Dictionary, error) {
	defaults := translation.DefaultDictionary()

	if err := s.TransRepo.Replace(ctx, defaults); err != nil {
		s.Logger.Errorw("failed to seed default dictionary", "error", err)
		// Still serve the defaults; seeding retries on the next read.
		return defaults, nil
	}

	s.Logger.Infow("seeded default label dictionary",
		"languages", len(defaults),
	)
	return defaults, nil
}
