package postgres

import (
	"context"
	"time"

	"github.com/atlasdoors/backoffice/internal/domain/message"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

type messageRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

// NewMessageRepository creates a new instance of message repository
func NewMessageRepository(db *postgres.DB, logger *logger.Logger) message.Repository {
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *messageRepository) Create(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (
			id, name, email, phone, body, replied, replied_at,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :email, :phone, :body, :replied, :replied_at,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating message", "message_id", m.ID, "email", m.Email)

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to create message").
			WithReportableDetails(map[string]any{
				"message_id": m.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *messageRepository) Get(ctx context.Context, id string) (*message.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE id = :id AND tenant_id = :tenant_id`

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to query message").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("message not found").
			WithHintf("Message with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var m message.Message
	if err := rows.StructScan(&m); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to scan message").
			Mark(ierr.ErrDatabase)
	}

	return &m, nil
}

func (r *messageRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*message.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE tenant_id = :tenant_id
		ORDER BY created_at DESC`

	params := map[string]interface{}{
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
			WithMessage("failed to query messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	messages := make([]*message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.StructScan(&m); err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to scan message").
				Mark(ierr.ErrDatabase)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

func (r *messageRepository) MarkReplied(ctx context.Context, id string, repliedAt time.Time) error {
	query := `
		UPDATE messages SET
			replied = TRUE,
			replied_at = :replied_at,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	params := map[string]interface{}{
		"id":         id,
		"replied_at": repliedAt,
		"tenant_id":  types.GetTenantID(ctx),
		"updated_by": types.GetUserID(ctx),
	}

	result, err := r.db.NamedExecContext(ctx, query, params)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to mark message as replied").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to read update result").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("message not found").
			WithHintf("Message with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
