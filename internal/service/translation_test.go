package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/domain/translation"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/testutil"
	"github.com/atlasdoors/backoffice/internal/types"
)

type TranslationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TranslationService
}

func TestTranslationService(t *testing.T) {
	suite.Run(t, new(TranslationServiceSuite))
}

func (s *TranslationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewTranslationService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		TransRepo:   stores.TransRepo,
		LedgerRepo:  stores.LedgerRepo,
		ProductRepo: stores.ProductRepo,
		AuditRepo:   stores.AuditRepo,
		MessageRepo: stores.MessageRepo,
		EmailSender: s.GetEmailSender(),
		PdfRenderer: s.GetRenderer(),
	})
}

func (s *TranslationServiceSuite) store() *testutil.InMemoryTranslationStore {
	return s.GetStores().TransRepo.(*testutil.InMemoryTranslationStore)
}

func (s *TranslationServiceSuite) TestGetAllSeedsDefaultsOnFirstUse() {
	dict, err := s.service.GetAll(s.GetContext())
	s.NoError(err)
	s.Equal("Facture", dict[types.LanguageFrench][translation.KeyInvoiceTitle])
	s.NotEmpty(dict[types.LanguageHebrew][translation.KeyInvoiceTitle])

	// The defaults are now persisted, not just served.
	stored, err := s.store().Get(s.GetContext())
	s.NoError(err)
	s.Equal(dict[types.LanguageFrench], stored[types.LanguageFrench])
}

func (s *TranslationServiceSuite) TestGetAllDegradesToDefaultsOnStoreError() {
	s.store().GetErr = ierr.NewError("connection refused").Mark(ierr.ErrDatabase)

	dict, err := s.service.GetAll(s.GetContext())
	s.NoError(err)
	s.Equal("Facture", dict[types.LanguageFrench][translation.KeyInvoiceTitle])
}

func (s *TranslationServiceSuite) TestUpdateLanguageLeavesOthersUntouched() {
	_, err := s.service.GetAll(s.GetContext())
	s.NoError(err)

	frBefore, err := s.service.GetLanguage(s.GetContext(), types.LanguageFrench)
	s.NoError(err)

	err = s.service.UpdateLanguage(s.GetContext(), types.LanguageHebrew, translation.Labels{
		translation.KeyInvoiceTitle: "חשבונית מס",
	})
	s.NoError(err)

	frAfter, err := s.service.GetLanguage(s.GetContext(), types.LanguageFrench)
	s.NoError(err)
	s.Equal(frBefore, frAfter)

	he, err := s.service.GetLanguage(s.GetContext(), types.LanguageHebrew)
	s.NoError(err)
	s.Equal("חשבונית מס", he[translation.KeyInvoiceTitle])
}

func (s *TranslationServiceSuite) TestGetLanguageFillsMissingKeysFromDefaults() {
	err := s.service.UpdateLanguage(s.GetContext(), types.LanguageHebrew, translation.Labels{
		translation.KeyInvoiceTitle: "חשבונית מס",
	})
	s.NoError(err)

	labels, err := s.service.GetLanguage(s.GetContext(), types.LanguageHebrew)
	s.NoError(err)
	s.Equal("חשבונית מס", labels[translation.KeyInvoiceTitle])
	// Keys the update left out resolve to the built-in Hebrew defaults.
	s.NotEmpty(labels[translation.KeyColTotal])
	s.NotEqual("Total", labels[translation.KeyColTotal])
}

func (s *TranslationServiceSuite) TestUpdateLanguageValidation() {
	err := s.service.UpdateLanguage(s.GetContext(), "de", translation.Labels{"a": "b"})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.UpdateLanguage(s.GetContext(), types.LanguageFrench, translation.Labels{})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.UpdateLanguage(s.GetContext(), types.LanguageFrench, translation.Labels{
		translation.KeyInvoiceTitle: "",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TranslationServiceSuite) TestUpdateInvalidatesCache() {
	first, err := s.service.GetAll(s.GetContext())
	s.NoError(err)
	s.Equal("Facture", first[types.LanguageFrench][translation.KeyInvoiceTitle])

	err = s.service.UpdateLanguage(s.GetContext(), types.LanguageFrench, translation.Labels{
		translation.KeyInvoiceTitle: "Facture client",
	})
	s.NoError(err)

	second, err := s.service.GetAll(s.GetContext())
	s.NoError(err)
	s.Equal("Facture client", second[types.LanguageFrench][translation.KeyInvoiceTitle])
}
