package types

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/samber/lo"
)

const (
	FilterDefaultLimit = 50

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetOrder() string
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter defines default values for query filters
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FilterDefaultLimit),
		Offset: lo.ToPtr(0),
		Order:  lo.ToPtr(OrderDesc),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Offset: lo.ToPtr(0),
		Order:  lo.ToPtr(OrderDesc),
	}
}

// IsUnlimited returns true if this is an unlimited query
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.IsUnlimited() {
		return 0
	}
	if f.Limit == nil {
		return FilterDefaultLimit
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return 0
	}
	return *f.Offset
}

// GetOrder returns the sort order or default if not set
func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return OrderDesc
	}
	return *f.Order
}

func (f QueryFilter) Validate() error {
	if f.Limit != nil && *f.Limit <= 0 {
		return ierr.NewError("limit must be greater than 0").
			WithHint("Limit must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must not be negative").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
