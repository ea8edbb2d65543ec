package audit

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/types"
)

// Repository is append-only: audit records are never edited or
// removed once written.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	ListByEntity(ctx context.Context, entityType types.AuditEntityType, entityID string) ([]*Record, error)
}
