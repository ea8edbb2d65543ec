package internal

import (
	"context"

	"github.com/atlasdoors/backoffice/internal/postgres"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS translations (
		id TEXT PRIMARY KEY,
		dictionary JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount NUMERIC(20,8) NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		balance_before NUMERIC(20,8) NOT NULL,
		balance_after NUMERIC(20,8) NOT NULL,
		tenant_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		updated_by TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_staff
		ON ledger_entries (staff_id, tenant_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		price NUMERIC(20,8) NOT NULL DEFAULT 0,
		installations_count NUMERIC(20,8) NOT NULL DEFAULT 0,
		tenant_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		updated_by TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS audit_records (
		id TEXT PRIMARY KEY,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		action TEXT NOT NULL,
		before JSONB,
		after JSONB,
		tenant_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		updated_by TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_records_entity
		ON audit_records (entity_type, entity_id, tenant_id)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL,
		replied BOOLEAN NOT NULL DEFAULT FALSE,
		replied_at TIMESTAMPTZ,
		tenant_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		updated_by TEXT NOT NULL DEFAULT ''
	)`,
}

// MigrateSchema creates the back-office tables when they do not exist
// yet. Statements are idempotent so the script is safe to re-run.
func MigrateSchema() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	log.Infow("schema migration complete", "statements", len(schemaStatements))
	return nil
}
