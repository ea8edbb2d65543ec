package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/atlasdoors/backoffice/docs/swagger"
	v1 "github.com/atlasdoors/backoffice/internal/api/v1"
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/rbac"
	"github.com/atlasdoors/backoffice/internal/rest/middleware"
)

type Handlers struct {
	Translation *v1.TranslationHandler
	Document    *v1.DocumentHandler
	Ledger      *v1.LedgerHandler
	Product     *v1.ProductHandler
	Message     *v1.MessageHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, rbacService *rbac.RBACService, log *logger.Logger) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", v1.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	perm := middleware.NewPermissionMiddleware(rbacService, log)

	public := router.Group("/v1")
	registerPublicRoutes(public, handlers)

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(cfg, log))
	registerPrivateRoutes(private, handlers, perm)

	return router
}

// registerPublicRoutes mounts the contact form endpoint used by the
// public website.
func registerPublicRoutes(router *gin.RouterGroup, handlers Handlers) {
	router.POST("/messages", handlers.Message.CreateMessage)
}

func registerPrivateRoutes(router *gin.RouterGroup, handlers Handlers, perm *middleware.PermissionMiddleware) {
	// Translation routes
	translations := router.Group("/translations")
	{
		translations.GET("", handlers.Translation.GetTranslations)
		translations.GET("/:lang", handlers.Translation.GetLanguage)
		translations.PUT("/:lang", perm.RequirePermission("translation", "update"), handlers.Translation.UpdateLanguage)
	}

	// Document routes
	documents := router.Group("/documents")
	{
		documents.POST("/compose", handlers.Document.ComposeDocument)
		documents.POST("/pdf", handlers.Document.GenerateDocumentPDF)
	}

	// Staff ledger routes
	staff := router.Group("/staff")
	{
		staff.POST("/:id/ledger", perm.RequirePermission("ledger", "write"), handlers.Ledger.ApplyTransaction)
		staff.GET("/:id/ledger", handlers.Ledger.GetStaffLedger)
		staff.GET("/:id/balance", handlers.Ledger.GetBalance)
	}

	// Product routes
	products := router.Group("/products")
	{
		products.POST("", perm.RequirePermission("product", "write"), handlers.Product.CreateProduct)
		products.GET("", handlers.Product.ListProducts)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", perm.RequirePermission("product", "write"), handlers.Product.UpdateProduct)
		products.DELETE("/:id", perm.RequirePermission("product", "write"), handlers.Product.DeleteProduct)
		products.GET("/:id/audit", handlers.Product.GetProductAuditTrail)
	}

	// Message routes
	messages := router.Group("/messages")
	{
		messages.GET("", handlers.Message.ListMessages)
		messages.GET("/:id", handlers.Message.GetMessage)
		messages.POST("/:id/reply", perm.RequirePermission("message", "reply"), handlers.Message.ReplyMessage)
	}
}
