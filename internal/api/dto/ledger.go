package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	"github.com/atlasdoors/backoffice/internal/types"
)

// LedgerTransactionRequest applies one add or subtract transaction to
// a staff member's ledger.
type LedgerTransactionRequest struct {
	Type   types.LedgerEntryType `json:"type" binding:"required"`
	Amount decimal.Decimal       `json:"amount" binding:"required"`
	Reason string                `json:"reason"`
}

func (r *LedgerTransactionRequest) ToOperation(staffID string) *ledger.Operation {
	return &ledger.Operation{
		StaffID: staffID,
		Type:    r.Type,
		Amount:  r.Amount,
		Reason:  r.Reason,
	}
}
