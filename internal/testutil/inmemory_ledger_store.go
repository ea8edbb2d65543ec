package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ ledger.Repository = (*InMemoryLedgerStore)(nil)

type InMemoryLedgerStore struct {
	mu      sync.RWMutex
	entries map[string]*ledger.Entry
	order   []string
}

func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{
		entries: make(map[string]*ledger.Entry),
	}
}

func (s *InMemoryLedgerStore) CreateEntry(ctx context.Context, entry *ledger.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.ID]; exists {
		return ierr.NewError("ledger entry already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *entry
	s.entries[entry.ID] = &copied
	s.order = append(s.order, entry.ID)
	return nil
}

func (s *InMemoryLedgerStore) GetEntryByID(ctx context.Context, id string) (*ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, exists := s.entries[id]; exists {
		copied := *entry
		return &copied, nil
	}
	return nil, ierr.NewError("ledger entry not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryLedgerStore) ListEntriesByStaff(ctx context.Context, staffID string, filter *types.LedgerEntryFilter) ([]*ledger.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.staffEntries(staffID)

	if filter != nil && !filter.IsUnlimited() {
		offset := filter.GetOffset()
		if offset > len(entries) {
			offset = len(entries)
		}
		end := offset + filter.GetLimit()
		if end > len(entries) {
			end = len(entries)
		}
		entries = entries[offset:end]
	}

	result := make([]*ledger.Entry, 0, len(entries))
	for _, entry := range entries {
		copied := *entry
		result = append(result, &copied)
	}
	return result, nil
}

func (s *InMemoryLedgerStore) CountEntriesByStaff(ctx context.Context, staffID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.staffEntries(staffID)), nil
}

func (s *InMemoryLedgerStore) GetBalance(ctx context.Context, staffID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.staffEntries(staffID)
	if len(entries) == 0 {
		return decimal.Zero, nil
	}
	return entries[0].BalanceAfter, nil
}

// staffEntries returns a staff member's entries newest first. Callers
// hold the lock.
func (s *InMemoryLedgerStore) staffEntries(staffID string) []*ledger.Entry {
	indexByID := make(map[string]int, len(s.order))
	for i, id := range s.order {
		indexByID[id] = i
	}

	var entries []*ledger.Entry
	for _, id := range s.order {
		if entry := s.entries[id]; entry.StaffID == staffID {
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return indexByID[entries[i].ID] > indexByID[entries[j].ID]
	})
	return entries
}

func (s *InMemoryLedgerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*ledger.Entry)
	s.order = nil
}
