package ledger

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Repository is an append-only store: entries are created and listed,
// never updated or removed.
type Repository interface {
	// CreateEntry appends one entry.
	CreateEntry(ctx context.Context, entry *Entry) error

	// GetEntryByID returns a single entry.
	GetEntryByID(ctx context.Context, id string) (*Entry, error)

	// ListEntriesByStaff returns a staff member's history, newest
	// first, honoring the filter's pagination.
	ListEntriesByStaff(ctx context.Context, staffID string, filter *types.LedgerEntryFilter) ([]*Entry, error)

	// CountEntriesByStaff returns the total history length.
	CountEntriesByStaff(ctx context.Context, staffID string) (int, error)

	// GetBalance returns the latest entry's balance-after snapshot,
	// or zero when the staff member has no entries.
	GetBalance(ctx context.Context, staffID string) (decimal.Decimal, error)
}
