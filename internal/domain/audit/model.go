package audit

import (
	"encoding/json"

	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

// Record is an immutable audit-log entry capturing one mutation of a
// tracked entity. Attribution comes from the write path's
// authenticated context (BaseModel.CreatedBy), never from the caller's
// payload.
type Record struct {
	ID         string                `db:"id" json:"id"`
	EntityType types.AuditEntityType `db:"entity_type" json:"entity_type"`
	EntityID   string                `db:"entity_id" json:"entity_id"`
	Action     types.AuditAction     `db:"action" json:"action"`
	Before     json.RawMessage       `db:"before" json:"before,omitempty"`
	After      json.RawMessage       `db:"after" json:"after,omitempty"`
	types.BaseModel
}

func (r *Record) TableName() string {
	return "audit_records"
}

// NewRecord snapshots the before/after states of an entity mutation.
// A nil before marks a create, a nil after marks a delete.
func NewRecord(base types.BaseModel, entityType types.AuditEntityType, entityID string, action types.AuditAction, before, after any) (*Record, error) {
	var beforeJSON, afterJSON json.RawMessage
	var err error

	if before != nil {
		beforeJSON, err = json.Marshal(before)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to snapshot entity state").
				Mark(ierr.ErrSystem)
		}
	}
	if after != nil {
		afterJSON, err = json.Marshal(after)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessage("failed to snapshot entity state").
				Mark(ierr.ErrSystem)
		}
	}

	return &Record{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_RECORD),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Before:     beforeJSON,
		After:      afterJSON,
		BaseModel:  base,
	}, nil
}
