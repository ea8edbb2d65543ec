package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

// LedgerService applies balance-changing transactions to staff
// ledgers. The history is append-only: applying a transaction writes a
// new entry carrying before and after balance snapshots.
type LedgerService interface {
	// ApplyTransaction validates the operation and appends one entry
	// atomically with the balance read it is based on.
	ApplyTransaction(ctx context.Context, op *ledger.Operation) (*ledger.Entry, error)

	// GetStaffLedger returns a staff member's entries, newest first,
	// together with the current balance and total history length.
	GetStaffLedger(ctx context.Context, staffID string, filter *types.LedgerEntryFilter) (*StaffLedger, error)

	// GetBalance returns the staff member's current balance.
	GetBalance(ctx context.Context, staffID string) (decimal.Decimal, error)
}

// StaffLedger is the paginated history view of one staff member.
type StaffLedger struct {
	StaffID string          `json:"staff_id"`
	Balance decimal.Decimal `json:"balance"`
	Entries []*ledger.Entry `json:"entries"`
	Total   int             `json:"total"`
}

type ledgerService struct {
	ServiceParams
}

func NewLedgerService(params ServiceParams) LedgerService {
	return &ledgerService{
		ServiceParams: params,
	}
}

func (s *ledgerService) ApplyTransaction(ctx context.Context, op *ledger.Operation) (*ledger.Entry, error) {
	if op == nil {
		return nil, ierr.NewError("operation is required").
			WithHint("Transaction payload is missing").
			Mark(ierr.ErrValidation)
	}

	if err := op.Validate(); err != nil {
		return nil, err
	}

	var entry *ledger.Entry
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		balanceBefore, err := s.LedgerRepo.GetBalance(ctx, op.StaffID)
		if err != nil {
			return err
		}

		entry = ledger.NewEntry(op, balanceBefore, types.GetDefaultBaseModel(ctx))
		return s.LedgerRepo.CreateEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("applied ledger transaction",
		"entry_id", entry.ID,
		"staff_id", entry.StaffID,
		"type", entry.Type,
		"amount", entry.Amount,
		"balance_after", entry.BalanceAfter,
	)

	return entry, nil
}

func (s *ledgerService) GetStaffLedger(ctx context.Context, staffID string, filter *types.LedgerEntryFilter) (*StaffLedger, error) {
	if staffID == "" {
		return nil, ierr.NewError("staff id is required").
			WithHint("Staff id is required").
			Mark(ierr.ErrValidation)
	}

	if filter == nil {
		filter = types.NewLedgerEntryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.LedgerRepo.ListEntriesByStaff(ctx, staffID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.LedgerRepo.CountEntriesByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	balance, err := s.LedgerRepo.GetBalance(ctx, staffID)
	if err != nil {
		return nil, err
	}

	return &StaffLedger{
		StaffID: staffID,
		Balance: balance,
		Entries: entries,
		Total:   total,
	}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, staffID string) (decimal.Decimal, error) {
	if staffID == "" {
		return decimal.Zero, ierr.NewError("staff id is required").
			WithHint("Staff id is required").
			Mark(ierr.ErrValidation)
	}

	return s.LedgerRepo.GetBalance(ctx, staffID)
}
