package testutil

import (
	"context"
	"sync"

	"github.com/atlasdoors/backoffice/internal/domain/audit"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ audit.Repository = (*InMemoryAuditStore)(nil)

type InMemoryAuditStore struct {
	mu      sync.RWMutex
	records []*audit.Record
}

func NewInMemoryAuditStore() *InMemoryAuditStore {
	return &InMemoryAuditStore{}
}

func (s *InMemoryAuditStore) Create(ctx context.Context, record *audit.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

func (s *InMemoryAuditStore) ListByEntity(ctx context.Context, entityType types.AuditEntityType, entityID string) ([]*audit.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*audit.Record
	for i := len(s.records) - 1; i >= 0; i-- {
		r := s.records[i]
		if r.EntityType == entityType && r.EntityID == entityID {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *InMemoryAuditStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
