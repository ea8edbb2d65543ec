package product

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
