package message

import (
	"context"
	"time"

	"github.com/atlasdoors/backoffice/internal/types"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	Get(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Message, error)
	MarkReplied(ctx context.Context, id string, repliedAt time.Time) error
}
