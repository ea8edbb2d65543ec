package ledger

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Operation represents the request to apply one balance-changing
// transaction to a staff member's ledger.
type Operation struct {
	StaffID string                `json:"staff_id"`
	Type    types.LedgerEntryType `json:"type"`
	Amount  decimal.Decimal       `json:"amount"`
	Reason  string                `json:"reason,omitempty"`
}

func (o *Operation) Validate() error {
	if o.StaffID == "" {
		return ierr.NewError("staff id is required").
			WithHint("Staff id is required").
			Mark(ierr.ErrValidation)
	}

	if err := o.Type.Validate(); err != nil {
		return err
	}

	if !o.Amount.IsPositive() {
		return ierr.NewError("amount must be a positive number").
			WithHint("Amount must be a positive number").
			WithReportableDetails(map[string]any{
				"amount": o.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// SignedAmount applies the operation type's sign: add increases the
// owed balance, subtract decreases it.
func (o *Operation) SignedAmount() decimal.Decimal {
	if o.Type == types.LedgerEntryTypeSubtract {
		return o.Amount.Neg()
	}
	return o.Amount
}
