package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

type ledgerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewLedgerRepository creates a new instance of ledger repository
func NewLedgerRepository(db *postgres.DB, logger *logger.Logger) ledger.Repository {
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, entry *ledger.Entry) error {
	query := `
		INSERT INTO ledger_entries (
			id, staff_id, type, amount, reason,
			balance_before, balance_after,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :staff_id, :type, :amount, :reason,
			:balance_before, :balance_after,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating ledger entry",
		"entry_id", entry.ID,
		"staff_id", entry.StaffID,
		"type", entry.Type,
	)

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to create ledger entry").
			WithReportableDetails(map[string]any{
				"entry_id": entry.ID,
				"staff_id": entry.StaffID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *ledgerRepository) GetEntryByID(ctx context.Context, id string) (*ledger.Entry, error) {
	query := `
		SELECT * FROM ledger_entries
		WHERE id = :id AND tenant_id = :tenant_id`

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query ledger entry").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("ledger entry not found").
			WithHintf("Ledger entry with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var entry ledger.Entry
	if err := rows.StructScan(&entry); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to scan ledger entry").
			Mark(ierr.ErrDatabase)
	}

	return &entry, nil
}

func (r *ledgerRepository) ListEntriesByStaff(ctx context.Context, staffID string, filter *types.LedgerEntryFilter) ([]*ledger.Entry, error) {
	query := `
		SELECT * FROM ledger_entries
		WHERE staff_id = :staff_id AND tenant_id = :tenant_id
		ORDER BY created_at DESC, id DESC`

	params := map[string]interface{}{
		"staff_id":  staffID,
		"tenant_id": types.GetTenantID(ctx),
	}

	if filter != nil && !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query ledger entries").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	entries := make([]*ledger.Entry, 0)
	for rows.Next() {
		var entry ledger.Entry
		if err := rows.StructScan(&entry); err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan ledger entry").
				Mark(ierr.ErrDatabase)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *ledgerRepository) CountEntriesByStaff(ctx context.Context, staffID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM ledger_entries
		WHERE staff_id = :staff_id AND tenant_id = :tenant_id`

	params := map[string]interface{}{
		"staff_id":  staffID,
		"tenant_id": types.GetTenantID(ctx),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithMessage("failed to count ledger entries").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithMessage("failed to scan ledger entry count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

// GetBalance reads the running balance from the latest entry. A staff
// member with no entries has a zero balance.
func (r *ledgerRepository) GetBalance(ctx context.Context, staffID string) (decimal.Decimal, error) {
	query := `
		SELECT balance_after FROM ledger_entries
		WHERE staff_id = :staff_id AND tenant_id = :tenant_id
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	params := map[string]interface{}{
		"staff_id":  staffID,
		"tenant_id": types.GetTenantID(ctx),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithMessage("failed to query staff balance").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	balance := decimal.Zero
	if rows.Next() {
		if err := rows.Scan(&balance); err != nil {
			return decimal.Zero, ierr.WithError(err).
				WithMessage("failed to scan staff balance").
				Mark(ierr.ErrDatabase)
		}
	}

	return balance, nil
}
