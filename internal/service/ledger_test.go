package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/testutil"
	"github.com/atlasdoors/backoffice/internal/types"
)

type LedgerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service LedgerService
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

func (s *LedgerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewLedgerService(s.params())
}

func (s *LedgerServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		TransRepo:   stores.TransRepo,
		LedgerRepo:  stores.LedgerRepo,
		ProductRepo: stores.ProductRepo,
		AuditRepo:   stores.AuditRepo,
		MessageRepo: stores.MessageRepo,
		EmailSender: s.GetEmailSender(),
		PdfRenderer: s.GetRenderer(),
	}
}

func (s *LedgerServiceSuite) apply(staffID string, entryType types.LedgerEntryType, amount int64) *ledger.Entry {
	entry, err := s.service.ApplyTransaction(s.GetContext(), &ledger.Operation{
		StaffID: staffID,
		Type:    entryType,
		Amount:  decimal.NewFromInt(amount),
		Reason:  "test transaction",
	})
	s.NoError(err)
	return entry
}

func (s *LedgerServiceSuite) TestApplyTransactionTracksRunningBalance() {
	s.apply("staff-1", types.LedgerEntryTypeAdd, 100)

	entry := s.apply("staff-1", types.LedgerEntryTypeAdd, 50)
	s.True(entry.BalanceBefore.Equal(decimal.NewFromInt(100)))
	s.True(entry.BalanceAfter.Equal(decimal.NewFromInt(150)))

	entry = s.apply("staff-1", types.LedgerEntryTypeSubtract, 30)
	s.True(entry.BalanceBefore.Equal(decimal.NewFromInt(150)))
	s.True(entry.BalanceAfter.Equal(decimal.NewFromInt(120)))

	balance, err := s.service.GetBalance(s.GetContext(), "staff-1")
	s.NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(120)))
}

func (s *LedgerServiceSuite) TestBalanceCanGoNegative() {
	entry := s.apply("staff-1", types.LedgerEntryTypeSubtract, 40)
	s.True(entry.BalanceBefore.IsZero())
	s.True(entry.BalanceAfter.Equal(decimal.NewFromInt(-40)))
}

func (s *LedgerServiceSuite) TestApplyTransactionRejectsInvalidOperations() {
	cases := []struct {
		name string
		op   *ledger.Operation
	}{
		{
			name: "missing staff id",
			op: &ledger.Operation{
				Type:   types.LedgerEntryTypeAdd,
				Amount: decimal.NewFromInt(10),
			},
		},
		{
			name: "unknown type",
			op: &ledger.Operation{
				StaffID: "staff-1",
				Type:    "transfer",
				Amount:  decimal.NewFromInt(10),
			},
		},
		{
			name: "zero amount",
			op: &ledger.Operation{
				StaffID: "staff-1",
				Type:    types.LedgerEntryTypeAdd,
				Amount:  decimal.Zero,
			},
		},
		{
			name: "negative amount",
			op: &ledger.Operation{
				StaffID: "staff-1",
				Type:    types.LedgerEntryTypeSubtract,
				Amount:  decimal.NewFromInt(-5),
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.ApplyTransaction(s.GetContext(), tc.op)
			s.Error(err)
			s.True(ierr.IsValidation(err))
		})
	}

	history, err := s.service.GetStaffLedger(s.GetContext(), "staff-1", nil)
	s.NoError(err)
	s.Empty(history.Entries)
}

func (s *LedgerServiceSuite) TestGetStaffLedgerNewestFirst() {
	s.apply("staff-1", types.LedgerEntryTypeAdd, 100)
	s.apply("staff-1", types.LedgerEntryTypeAdd, 50)
	s.apply("staff-1", types.LedgerEntryTypeSubtract, 30)
	s.apply("staff-2", types.LedgerEntryTypeAdd, 999)

	history, err := s.service.GetStaffLedger(s.GetContext(), "staff-1", nil)
	s.NoError(err)
	s.Equal(3, history.Total)
	s.Len(history.Entries, 3)
	s.True(history.Balance.Equal(decimal.NewFromInt(120)))

	// Newest first: the subtraction is at the top.
	s.Equal(types.LedgerEntryTypeSubtract, history.Entries[0].Type)
	s.True(history.Entries[0].BalanceAfter.Equal(decimal.NewFromInt(120)))
	s.True(history.Entries[2].BalanceBefore.IsZero())
}

func (s *LedgerServiceSuite) TestHistoryIsImmutable() {
	created := s.apply("staff-1", types.LedgerEntryTypeAdd, 100)
	s.apply("staff-1", types.LedgerEntryTypeSubtract, 25)

	// The earlier entry's snapshots are untouched by later activity.
	stored, err := s.GetStores().LedgerRepo.GetEntryByID(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(stored.BalanceBefore.IsZero())
	s.True(stored.BalanceAfter.Equal(decimal.NewFromInt(100)))
}

func (s *LedgerServiceSuite) TestGetStaffLedgerPagination() {
	for i := 0; i < 5; i++ {
		s.apply("staff-1", types.LedgerEntryTypeAdd, 10)
	}

	filter := types.NewLedgerEntryFilter()
	limit := 2
	offset := 1
	filter.Limit = &limit
	filter.Offset = &offset

	history, err := s.service.GetStaffLedger(s.GetContext(), "staff-1", filter)
	s.NoError(err)
	s.Equal(5, history.Total)
	s.Len(history.Entries, 2)
	s.True(history.Entries[0].BalanceAfter.Equal(decimal.NewFromInt(40)))
}

func (s *LedgerServiceSuite) TestGetBalanceRequiresStaffID() {
	_, err := s.service.GetBalance(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
