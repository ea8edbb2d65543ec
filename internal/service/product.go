package service

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/domain/audit"
	"github.com/atlasdoors/backoffice/internal/domain/product"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

// ProductService manages the door catalog. Every write lands an audit
// record in the same transaction, so the trail can never miss a change.
type ProductService interface {
	Create(ctx context.Context, p *product.Product) (*product.Product, error)
	Get(ctx context.Context, id string) (*product.Product, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error)
	Update(ctx context.Context, p *product.Product) (*product.Product, error)
	Delete(ctx context.Context, id string) error

	// GetAuditTrail returns the change history of one product, newest
	// first.
	GetAuditTrail(ctx context.Context, id string) ([]*audit.Record, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if p == nil {
		return nil, ierr.NewError("product is required").
			WithHint("Product payload is missing").
			Mark(ierr.ErrValidation)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT)
	p.BaseModel = types.GetDefaultBaseModel(ctx)

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ProductRepo.Create(ctx, p); err != nil {
			return err
		}
		return s.writeAudit(ctx, p.ID, types.AuditActionCreate, nil, p)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created product", "product_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *productService) Get(ctx context.Context, id string) (*product.Product, error) {
	if id == "" {
		return nil, ierr.NewError("product id is required").
			WithHint("Product id is required").
			Mark(ierr.ErrValidation)
	}
	return s.ProductRepo.Get(ctx, id)
}

func (s *productService) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.ProductRepo.List(ctx, filter)
}

func (s *productService) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	if p == nil || p.ID == "" {
		return nil, ierr.NewError("product id is required").
			WithHint("Product id is required").
			Mark(ierr.ErrValidation)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	var updated *product.Product
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.ProductRepo.Get(ctx, p.ID)
		if err != nil {
			return err
		}

		p.BaseModel = existing.BaseModel
		p.UpdatedBy = types.GetUserID(ctx)

		if err := s.ProductRepo.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return s.writeAudit(ctx, p.ID, types.AuditActionUpdate, existing, p)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated product", "product_id", p.ID)
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("product id is required").
			WithHint("Product id is required").
			Mark(ierr.ErrValidation)
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.ProductRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := s.ProductRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.writeAudit(ctx, id, types.AuditActionDelete, existing, nil)
	})
	if err != nil {
		return err
	}

	s.Logger.Infow("deleted product", "product_id", id)
	return nil
}

func (s *productService) GetAuditTrail(ctx context.Context, id string) ([]*audit.Record, error) {
	if id == "" {
		return nil, ierr.NewError("product id is required").
			WithHint("Product id is required").
			Mark(ierr.ErrValidation)
	}
	return s.AuditRepo.ListByEntity(ctx, types.AuditEntityTypeProduct, id)
}

func (s *productService) writeAudit(ctx context.Context, entityID string, action types.AuditAction, before, after any) error {
	record, err := audit.NewRecord(
		types.GetDefaultBaseModel(ctx),
		types.AuditEntityTypeProduct,
		entityID,
		action,
		before,
		after,
	)
	if err != nil {
		return err
	}
	return s.AuditRepo.Create(ctx, record)
}
