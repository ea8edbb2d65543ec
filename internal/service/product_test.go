package service

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/domain/product"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/testutil"
	"github.com/atlasdoors/backoffice/internal/types"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewProductService(ServiceParams{
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

func (s *ProductServiceSuite) createProduct() *product.Product {
	p, err := s.service.Create(s.GetContext(), &product.Product{
		Name:     "Porte blindée T5",
		Category: "security",
		Price:    decimal.NewFromInt(1200),
	})
	s.NoError(err)
	return p
}

func (s *ProductServiceSuite) TestCreateAssignsIDAndWritesAudit() {
	p := s.createProduct()
	s.Contains(p.ID, "prod")
	s.Equal(types.StatusPublished, p.Status)

	trail, err := s.service.GetAuditTrail(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(trail, 1)
	s.Equal(types.AuditActionCreate, trail[0].Action)
	s.Nil(trail[0].Before)

	var after product.Product
	s.NoError(json.Unmarshal(trail[0].After, &after))
	s.Equal(p.Name, after.Name)
}

func (s *ProductServiceSuite) TestUpdateCapturesBeforeAndAfter() {
	p := s.createProduct()

	p.Price = decimal.NewFromInt(1350)
	_, err := s.service.Update(s.GetContext(), p)
	s.NoError(err)

	trail, err := s.service.GetAuditTrail(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(trail, 2)
	s.Equal(types.AuditActionUpdate, trail[0].Action)

	var before, after product.Product
	s.NoError(json.Unmarshal(trail[0].Before, &before))
	s.NoError(json.Unmarshal(trail[0].After, &after))
	s.True(before.Price.Equal(decimal.NewFromInt(1200)))
	s.True(after.Price.Equal(decimal.NewFromInt(1350)))
}

func (s *ProductServiceSuite) TestDeleteIsSoftAndAudited() {
	p := s.createProduct()

	s.NoError(s.service.Delete(s.GetContext(), p.ID))

	_, err := s.service.Get(s.GetContext(), p.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	trail, err := s.service.GetAuditTrail(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(trail, 2)
	s.Equal(types.AuditActionDelete, trail[0].Action)
	s.Nil(trail[0].After)
}

func (s *ProductServiceSuite) TestListSkipsDeleted() {
	first := s.createProduct()
	second, err := s.service.Create(s.GetContext(), &product.Product{
		Name:  "Porte coulissante",
		Price: decimal.NewFromInt(800),
	})
	s.NoError(err)

	s.NoError(s.service.Delete(s.GetContext(), first.ID))

	products, err := s.service.List(s.GetContext(), nil)
	s.NoError(err)
	s.Len(products, 1)
	s.Equal(second.ID, products[0].ID)
}

func (s *ProductServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.GetContext(), &product.Product{Price: decimal.NewFromInt(10)})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.Create(s.GetContext(), &product.Product{
		Name:  "Porte",
		Price: decimal.NewFromInt(-10),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
