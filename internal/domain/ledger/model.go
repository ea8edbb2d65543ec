package ledger

import (
	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/shopspring/decimal"
)

// Entry is one append-only record of a staff member's finance ledger.
// Balance snapshots are captured on every entry so history stays
// consistent even if later entries are appended concurrently.
type Entry struct {
	ID            string                `db:"id" json:"id"`
	StaffID       string                `db:"staff_id" json:"staff_id"`
	Type          types.LedgerEntryType `db:"type" json:"type"`
	Amount        decimal.Decimal       `db:"amount" json:"amount"`
	Reason        string                `db:"reason" json:"reason"`
	BalanceBefore decimal.Decimal       `db:"balance_before" json:"balance_before"`
	BalanceAfter  decimal.Decimal       `db:"balance_after" json:"balance_after"`
	types.BaseModel
}

func (e *Entry) TableName() string {
	return "ledger_entries"
}

// NewEntry builds an entry from a validated operation and the balance
// read inside the same transaction.
func NewEntry(op *Operation, balanceBefore decimal.Decimal, baseModel types.BaseModel) *Entry {
	balanceAfter := balanceBefore.Add(op.SignedAmount())
	return &Entry{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEDGER_ENTRY),
		StaffID:       op.StaffID,
		Type:          op.Type,
		Amount:        op.Amount,
		Reason:        op.Reason,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		BaseModel:     baseModel,
	}
}

// Balance summarizes a staff member's ledger at a point in time.
type Balance struct {
	StaffID string          `json:"staff_id"`
	Balance decimal.Decimal `json:"balance"`
}
