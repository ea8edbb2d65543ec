package translation

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/types"
)

// Repository persists the dictionary as one document keyed by a fixed
// identifier. Writes are last-writer-wins at language granularity.
type Repository interface {
	// Get returns the stored dictionary, or ErrNotFound when no
	// dictionary has been persisted yet.
	Get(ctx context.Context) (Dictionary, error)

	// Replace overwrites the whole dictionary document.
	Replace(ctx context.Context, dict Dictionary) error

	// ReplaceLanguage overwrites one language's full key set without
	// touching any other language.
	ReplaceLanguage(ctx context.Context, lang types.Language, labels Labels) error
}
