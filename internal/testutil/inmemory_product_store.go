package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/atlasdoors/backoffice/internal/domain/product"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ product.Repository = (*InMemoryProductStore)(nil)

type InMemoryProductStore struct {
	mu       sync.RWMutex
	products map[string]*product.Product
	order    []string
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		products: make(map[string]*product.Product),
	}
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; exists {
		return ierr.NewError("product already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *p
	s.products[p.ID] = &copied
	s.order = append(s.order, p.ID)
	return nil
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, exists := s.products[id]; exists && p.Status != types.StatusDeleted {
		copied := *p
		return &copied, nil
	}
	return nil, ierr.NewError("product not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indexByID := make(map[string]int, len(s.order))
	for i, id := range s.order {
		indexByID[id] = i
	}

	var result []*product.Product
	for _, id := range s.order {
		if p := s.products[id]; p.Status != types.StatusDeleted {
			copied := *p
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return indexByID[result[i].ID] > indexByID[result[j].ID]
	})

	if filter != nil && !filter.IsUnlimited() {
		offset := filter.GetOffset()
		if offset > len(result) {
			offset = len(result)
		}
		end := offset + filter.GetLimit()
		if end > len(result) {
			end = len(result)
		}
		result = result[offset:end]
	}

	return result, nil
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.products[p.ID]; !exists || existing.Status == types.StatusDeleted {
		return ierr.NewError("product not found").
			Mark(ierr.ErrNotFound)
	}

	copied := *p
	s.products[p.ID] = &copied
	return nil
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[id]
	if !exists || p.Status == types.StatusDeleted {
		return ierr.NewError("product not found").
			Mark(ierr.ErrNotFound)
	}

	p.Status = types.StatusDeleted
	return nil
}

func (s *InMemoryProductStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]*product.Product)
	s.order = nil
}
