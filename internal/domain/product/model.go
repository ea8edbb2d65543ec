package product

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Product is a door model offered for sale and installation.
type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	Price       decimal.Decimal `db:"price" json:"price"`
	// InstallationsCount tracks how many times this model has been
	// installed. Free-form numeric input upstream; no upper bound.
	InstallationsCount decimal.Decimal `db:"installations_count" json:"installations_count"`
	types.BaseModel
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return ierr.NewError("product name is required").
			WithHint("Product name is required").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("product price must not be negative").
			WithHint("Product price must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
