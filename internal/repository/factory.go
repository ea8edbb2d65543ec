package repository

import (
	"github.com/atlasdoors/backoffice/internal/domain/audit"
	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	"github.com/atlasdoors/backoffice/internal/domain/message"
	"github.com/atlasdoors/backoffice/internal/domain/product"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	pgRepo "github.com/atlasdoors/backoffice/internal/repository/postgres"
)

func NewTranslationRepository(db *postgres.DB, logger *logger.Logger) translation.Repository {
	return pgRepo.NewTranslationRepository(db, logger)
}

func NewLedgerRepository(db *postgres.DB, logger *logger.Logger) ledger.Repository {
	return pgRepo.NewLedgerRepository(db, logger)
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return pgRepo.NewProductRepository(db, logger)
}

func NewAuditRepository(db *postgres.DB, logger *logger.Logger) audit.Repository {
	return pgRepo.NewAuditRepository(db, logger)
}

func NewMessageRepository(db *postgres.DB, logger *logger.Logger) message.Repository {
	return pgRepo.NewMessageRepository(db, logger)
}
