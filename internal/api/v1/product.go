package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasdoors/backoffice/internal/api/dto"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/service"
	"github.com/atlasdoors/backoffice/internal/types"
)

type ProductHandler struct {
	service service.ProductService
	log     *logger.Logger
}

func NewProductHandler(service service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a door model to the catalog
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Product"
// @Success 200 {object} product.Product
// @Failure 400 {object} ierr.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	p, err := h.service.Create(c.Request.Context(), req.ToProduct())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} ierr.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} product.Product
// @Failure 400 {object} ierr.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	products, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Product"
// @Success 200 {object} product.Product
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	p, err := h.service.Update(c.Request.Context(), req.ToProduct(c.Param("id")))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetProductAuditTrail godoc
// @Summary Get a product's change history
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {array} audit.Record
// @Failure 400 {object} ierr.ErrorResponse
// @Router /products/{id}/audit [get]
func (h *ProductHandler) GetProductAuditTrail(c *gin.Context) {
	records, err := h.service.GetAuditTrail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, records)
}
