package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/cache"
	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/atlasdoors/backoffice/internal/domain/audit"
	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	"github.com/atlasdoors/backoffice/internal/domain/message"
	"github.com/atlasdoors/backoffice/internal/domain/product"
	"github.com/atlasdoors/backoffice/internal/domain/translation"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/postgres"
	"github.com/atlasdoors/backoffice/internal/types"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	TransRepo   translation.Repository
	LedgerRepo  ledger.Repository
	ProductRepo product.Repository
	AuditRepo   audit.Repository
	MessageRepo message.Repository
}

// BaseServiceTestSuite provides common functionality for all service
// test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	stores      Stores
	db          postgres.IClient
	cache       cache.Cache
	logger      *logger.Logger
	config      *config.Configuration
	emailSender *MockEmailSender
	renderer    *MockDocumentRenderer
	now         time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		TransRepo:   NewInMemoryTranslationStore(),
		LedgerRepo:  NewInMemoryLedgerStore(),
		ProductRepo: NewInMemoryProductStore(),
		AuditRepo:   NewInMemoryAuditStore(),
		MessageRepo: NewInMemoryMessageStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.cache = cache.NewInMemoryCache()
	s.emailSender = NewMockEmailSender()
	s.renderer = NewMockDocumentRenderer()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.TransRepo.(*InMemoryTranslationStore).Clear()
	s.stores.LedgerRepo.(*InMemoryLedgerStore).Clear()
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
	s.stores.AuditRepo.(*InMemoryAuditStore).Clear()
	s.stores.MessageRepo.(*InMemoryMessageStore).Clear()
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetEmailSender returns the recording email sender
func (s *BaseServiceTestSuite) GetEmailSender() *MockEmailSender {
	return s.emailSender
}

// GetRenderer returns the recording document renderer
func (s *BaseServiceTestSuite) GetRenderer() *MockDocumentRenderer {
	return s.renderer
}

// GetNow returns the current time in UTC fixed at test setup
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
