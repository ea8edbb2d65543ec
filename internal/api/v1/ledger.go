package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasdoors/backoffice/internal/api/dto"
	"github.com/atlasdoors/backoffice/internal/domain/ledger"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/logger"
	"github.com/atlasdoors/backoffice/internal/service"
	"github.com/atlasdoors/backoffice/internal/types"
)

type LedgerHandler struct {
	service service.LedgerService
	log     *logger.Logger
}

func NewLedgerHandler(service service.LedgerService, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: service,
		log:     log,
	}
}

// ApplyTransaction godoc
// @Summary Apply a ledger transaction
// @Description Append one add or subtract transaction to a staff member's ledger
// @Tags Ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param request body dto.LedgerTransactionRequest true "Transaction"
// @Success 200 {object} ledger.Entry
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /staff/{id}/ledger [post]
func (h *LedgerHandler) ApplyTransaction(c *gin.Context) {
	staffID := c.Param("id")

	var req dto.LedgerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	entry, err := h.service.ApplyTransaction(c.Request.Context(), req.ToOperation(staffID))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetStaffLedger godoc
// @Summary Get a staff member's ledger
// @Description Get a staff member's transaction history, newest first, with the current balance
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.StaffLedger
// @Failure 400 {object} ierr.ErrorResponse
// @Router /staff/{id}/ledger [get]
func (h *LedgerHandler) GetStaffLedger(c *gin.Context) {
	staffID := c.Param("id")

	filter := types.NewLedgerEntryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	result, err := h.service.GetStaffLedger(c.Request.Context(), staffID, filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBalance godoc
// @Summary Get a staff member's balance
// @Description Get the current owed balance of one staff member
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} ledger.Balance
// @Failure 400 {object} ierr.ErrorResponse
// @Router /staff/{id}/balance [get]
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	staffID := c.Param("id")

	balance, err := h.service.GetBalance(c.Request.Context(), staffID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, &ledger.Balance{
		StaffID: staffID,
		Balance: balance,
	})
}
