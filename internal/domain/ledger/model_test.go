package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

func TestOperationValidate(t *testing.T) {
	op := &Operation{
		StaffID: "staff-1",
		Type:    types.LedgerEntryTypeAdd,
		Amount:  decimal.NewFromInt(50),
	}
	assert.NoError(t, op.Validate())

	op.Amount = decimal.Zero
	err := op.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	op.Amount = decimal.NewFromInt(-50)
	assert.Error(t, op.Validate())
}

func TestOperationSignedAmount(t *testing.T) {
	add := &Operation{Type: types.LedgerEntryTypeAdd, Amount: decimal.NewFromInt(50)}
	assert.True(t, add.SignedAmount().Equal(decimal.NewFromInt(50)))

	sub := &Operation{Type: types.LedgerEntryTypeSubtract, Amount: decimal.NewFromInt(30)}
	assert.True(t, sub.SignedAmount().Equal(decimal.NewFromInt(-30)))
}

func TestNewEntrySnapshotsBalances(t *testing.T) {
	op := &Operation{
		StaffID: "staff-1",
		Type:    types.LedgerEntryTypeSubtract,
		Amount:  decimal.NewFromInt(30),
		Reason:  "tool purchase",
	}

	entry := NewEntry(op, decimal.NewFromInt(150), types.BaseModel{TenantID: types.DefaultTenantID})
	assert.Contains(t, entry.ID, "ledg")
	assert.True(t, entry.BalanceBefore.Equal(decimal.NewFromInt(150)))
	assert.True(t, entry.BalanceAfter.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "tool purchase", entry.Reason)
	// The stored amount keeps the operation's magnitude; the type
	// carries the sign.
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(30)))
}
