package testutil

import (
	"context"
	"sync"

	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ translation.Repository = (*InMemoryTranslationStore)(nil)

type InMemoryTranslationStore struct {
	mu   sync.RWMutex
	dict translation.Dictionary

	// GetErr simulates a broken store on reads.
	GetErr error
}

func NewInMemoryTranslationStore() *InMemoryTranslationStore {
	return &InMemoryTranslationStore{}
}

func (s *InMemoryTranslationStore) Get(ctx context.Context) (translation.Dictionary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.dict == nil {
		return nil, ierr.NewError("translation dictionary not found").
			Mark(ierr.ErrNotFound)
	}
	return s.dict.Clone(), nil
}

func (s *InMemoryTranslationStore) Replace(ctx context.Context, dict translation.Dictionary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dict = dict.Clone()
	return nil
}

func (s *InMemoryTranslationStore) ReplaceLanguage(ctx context.Context, lang types.Language, labels translation.Labels) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dict == nil {
		s.dict = make(translation.Dictionary)
	}
	copied := make(translation.Labels, len(labels))
	for k, v := range labels {
		copied[k] = v
	}
	s.dict[lang] = copied
	return nil
}

func (s *InMemoryTranslationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dict = nil
	s.GetErr = nil
}
