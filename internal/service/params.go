package service

import (
	"github.com/atlasdoors/backoffice/internal/cache"
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/domain/audit"
	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	"github.com/atlasdoors/backoffice/internal/domain/message"
	"github.com/atlasdoors/backoffice/internal/domain/product"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	"github.com/atlasdoors/backoffice/internal/email"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/pdfgen"
	"github.com/atlasdoors/backoffice/internal/postgres"
)

// ServiceParams bundles the dependencies every service draws from.
// Builders receive the whole struct so constructors stay stable as
// services grow.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Repositories
	TransRepo   translation.Repository
	LedgerRepo  ledger.Repository
	ProductRepo product.Repository
	AuditRepo   audit.Repository
	MessageRepo message.Repository

	// Outbound integrations
	EmailSender email.Sender
	PdfRenderer pdfgen.DocumentRenderer
}

func NewServiceParams(
	logger *logger.Logger,
	cfg *config.Configuration,
	db postgres.IClient,
	cacheClient cache.Cache,
	transRepo translation.Repository,
	ledgerRepo ledger.Repository,
	productRepo product.Repository,
	auditRepo audit.Repository,
	messageRepo message.Repository,
	emailSender email.Sender,
	pdfRenderer pdfgen.DocumentRenderer,
) ServiceParams {
	return ServiceParams{
		Logger:      logger,
		Config:      cfg,
		DB:          db,
		Cache:       cacheClient,
		TransRepo:   transRepo,
		LedgerRepo:  ledgerRepo,
		ProductRepo: productRepo,
		AuditRepo:   auditRepo,
		MessageRepo: messageRepo,
		EmailSender: emailSender,
		PdfRenderer: pdfRenderer,
	}
}
