package postgres

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/domain/product"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

type productRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewProductRepository creates a new instance of product repository
func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, category, price, installations_count,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :description, :category, :price, :installations_count,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating product", "product_id", p.ID, "name", p.Name)

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to create product").
			WithReportableDetails(map[string]any{
				"product_id": p.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	query := `
		SELECT * FROM products
		WHERE id = :id AND tenant_id = :tenant_id AND status != :deleted_status`

	params := map[string]interface{}{
		"id":             id,
		"tenant_id":      types.GetTenantID(ctx),
		"deleted_status": types.StatusDeleted,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query product").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var p product.Product
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to scan product").
			Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	query := `
		SELECT * FROM products
		WHERE tenant_id = :tenant_id AND status != :deleted_status
		ORDER BY created_at DESC`

	params := map[string]interface{}{
		"tenant_id":      types.GetTenantID(ctx),
		"deleted_status": types.StatusDeleted,
	}

	if filter != nil && !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan product").
				Mark(ierr.ErrDatabase)
		}
		products = append(products, &p)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products SET
			name = :name,
			description = :description,
			category = :category,
			price = :price,
			installations_count = :installations_count,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to update product").
			WithReportableDetails(map[string]any{
				"product_id": p.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to read update result").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE products SET
			status = :deleted_status,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	params := map[string]interface{}{
		"id":             id,
		"tenant_id":      types.GetTenantID(ctx),
		"deleted_status": types.StatusDeleted,
		"updated_by":     types.GetUserID(ctx),
	}

	result, err := r.db.NamedExecContext(ctx, query, params)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to delete product").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to read delete result").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
