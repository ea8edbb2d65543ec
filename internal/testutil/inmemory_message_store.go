package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/atlasdoors/backoffice/internal/domain/message"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ message.Repository = (*InMemoryMessageStore)(nil)

type InMemoryMessageStore struct {
	mu       sync.RWMutex
	messages map[string]*message.Message
	order    []string
}

func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		messages: make(map[string]*message.Message),
	}
}

func (s *InMemoryMessageStore) Create(ctx context.Context, m *message.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.messages[m.ID]; exists {
		return ierr.NewError("message already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	copied := *m
	s.messages[m.ID] = &copied
	s.order = append(s.order, m.ID)
	return nil
}

func (s *InMemoryMessageStore) Get(ctx context.Context, id string) (*message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, exists := s.messages[id]; exists {
		copied := *m
		return &copied, nil
	}
	return nil, ierr.NewError("message not found").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryMessageStore) List(ctx context.Context, filter *types.QueryFilter) ([]*message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*message.Message
	for i := len(s.order) - 1; i >= 0; i-- {
		copied := *s.messages[s.order[i]]
		result = append(result, &copied)
	}

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

func (s *InMemoryMessageStore) MarkReplied(ctx context.Context, id string, repliedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, exists := s.messages[id]
	if !exists {
		return ierr.NewError("message not found").
			Mark(ierr.ErrNotFound)
	}

	m.Replied = true
	m.RepliedAt = &repliedAt
	return nil
}

func (s *InMemoryMessageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make(map[string]*message.Message)
	s.order = nil
}
