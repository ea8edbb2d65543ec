package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/atlasdoors/backoffice/internal/api"
	v1 "github.com/atlasdoors/backoffice/internal/api/v1"
	"github.com/atlasdoors/backoffice/internal/cache"
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/email"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/pdfgen"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/rbac"
	"github.com/atlasdoors/backoffice/internal/repository"
	"github.com/atlasdoors/backoffice/internal/sentry"
	"github.com/atlasdoors/backoffice/internal/service"
)

// @title Atlas Doors Back Office API
// @version 1.0
// @description Back office API for the Atlas Doors sales and installation company
// @BasePath /v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format **Bearer &lt;token&gt;**

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			provideDBClient,

			// Outbound integrations
			email.NewClient,
			pdfgen.NewTypstRenderer,

			// RBAC
			rbac.NewRBACService,

			// Repositories
			repository.NewTranslationRepository,
			repository.NewLedgerRepository,
			repository.NewProductRepository,
			repository.NewAuditRepository,
			repository.NewMessageRepository,

			// Services
			service.NewServiceParams,
			service.NewTranslationService,
			service.NewDocumentService,
			service.NewLedgerService,
			service.NewProductService,
			service.NewMessageService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app.Run()
}

func provideDBClient(db *postgres.DB) postgres.IClient {
	return db
}

func provideHandlers(
	log *logger.Logger,
	translationService service.TranslationService,
	documentService service.DocumentService,
	ledgerService service.LedgerService,
	productService service.ProductService,
	messageService service.MessageService,
) api.Handlers {
	return api.Handlers{
		Translation: v1.NewTranslationHandler(translationService, log),
		Document:    v1.NewDocumentHandler(documentService, log),
		Ledger:      v1.NewLedgerHandler(ledgerService, log),
		Product:     v1.NewProductHandler(productService, log),
		Message:     v1.NewMessageHandler(messageService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, rbacService *rbac.RBACService, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, rbacService, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			defer db.Close()
			return server.Shutdown(ctx)
		},
	})
}
