package postgres

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/domain/audit"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

type auditRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewAuditRepository creates a new instance of audit repository
func NewAuditRepository(db *postgres.DB, logger *logger.Logger) audit.Repository {
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditRepository) Create(ctx context.Context, record *audit.Record) error {
	query := `
		INSERT INTO audit_records (
			id, entity_type, entity_id, action, before, after,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :entity_type, :entity_id, :action, :before, :after,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating audit record",
		"record_id", record.ID,
		"entity_type", record.EntityType,
		"entity_id", record.EntityID,
		"action", record.Action,
	)

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to create audit record").
			WithReportableDetails(map[string]any{
				"entity_type": record.EntityType,
				"entity_id":   record.EntityID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *auditRepository) ListByEntity(ctx context.Context, entityType types.AuditEntityType, entityID string) ([]*audit.Record, error) {
	query := `
		SELECT * FROM audit_records
		WHERE entity_type = :entity_type AND entity_id = :entity_id AND tenant_id = :tenant_id
		ORDER BY created_at DESC, id DESC`

	params := map[string]interface{}{
		"entity_type": entityType,
		"entity_id":   entityID,
		"tenant_id":   types.GetTenantID(ctx),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query audit records").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	records := make([]*audit.Record, 0)
	for rows.Next() {
		var record audit.Record
		if err := rows.StructScan(&record); err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan audit record").
				Mark(ierr.ErrDatabase)
		}
		records = append(records, &record)
	}

	return records, nil
}
