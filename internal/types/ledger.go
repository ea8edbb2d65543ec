package types

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
)

// LedgerEntryType signs a ledger amount: add increases the owed
// balance, subtract decreases it.
type LedgerEntryType string

const (
	LedgerEntryTypeAdd      LedgerEntryType = "add"
	LedgerEntryTypeSubtract LedgerEntryType = "subtract"
)

func (t LedgerEntryType) Validate() error {
	switch t {
	case LedgerEntryTypeAdd, LedgerEntryTypeSubtract:
		return nil
	default:
		return ierr.NewError("invalid ledger entry type").
			WithHintf("Entry type must be one of: %s, %s", LedgerEntryTypeAdd, LedgerEntryTypeSubtract).
			Mark(ierr.ErrValidation)
	}
}

// LedgerEntryFilter paginates a staff member's transaction history.
type LedgerEntryFilter struct {
	*QueryFilter
	StaffID string `json:"staff_id,omitempty" form:"staff_id"`
}

func NewLedgerEntryFilter() *LedgerEntryFilter {
	return &LedgerEntryFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *LedgerEntryFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}
