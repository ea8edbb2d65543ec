package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/product"
)

type CreateProductRequest struct {
	Name               string          `json:"name" binding:"required"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Price              decimal.Decimal `json:"price"`
	InstallationsCount decimal.Decimal `json:"installations_count"`
}

func (r *CreateProductRequest) ToProduct() *product.Product {
	return &product.Product{
		Name:               r.Name,
		Description:        r.Description,
		Category:           r.Category,
		Price:              r.Price,
		InstallationsCount: r.InstallationsCount,
	}
}

type UpdateProductRequest struct {
	Name               string          `json:"name" binding:"required"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Price              decimal.Decimal `json:"price"`
	InstallationsCount decimal.Decimal `json:"installations_count"`
}

func (r *UpdateProductRequest) ToProduct(id string) *product.Product {
	return &product.Product{
		ID:                 id,
		Name:               r.Name,
		Description:        r.Description,
		Category:           r.Category,
		Price:              r.Price,
		InstallationsCount: r.InstallationsCount,
	}
}
