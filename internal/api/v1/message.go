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

type MessageHandler struct {
	service service.MessageService
	log     *logger.Logger
}

func NewMessageHandler(service service.MessageService, log *logger.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log,
	}
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Description Store a contact-form message from a prospective client
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Message"
// @Success 200 {object} message.Message
// @Failure 400 {object} ierr.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	m, err := h.service.Create(c.Request.Context(), req.ToMessage())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ListMessages godoc
// @Summary List contact messages
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} message.Message
// @Failure 400 {object} ierr.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	filter := types.NewDefaultQueryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	messages, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetMessage godoc
// @Summary Get a contact message
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} message.Message
// @Failure 404 {object} ierr.ErrorResponse
// @Router /messages/{id} [get]
func (h *MessageHandler) GetMessage(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ReplyMessage godoc
// @Summary Reply to a contact message
// @Description Email an answer to the message's sender and mark the message replied
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body dto.ReplyMessageRequest true "Reply"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ierr.ErrorResponse
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) ReplyMessage(c *gin.Context) {
	var req dto.ReplyMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.Reply(c.Request.Context(), c.Param("id"), req.Subject, req.Body); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply sent successfully"})
}
