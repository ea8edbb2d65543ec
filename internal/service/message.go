package service

import (
	"context"
	"time"

	"github.com/atlasdoors/backoffice/internal/domain/message"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/types"
)

// MessageService stores contact-form messages and lets staff answer
// them by email. A message is marked replied only after the send
// succeeds.
type MessageService interface {
	Create(ctx context.Context, m *message.Message) (*message.Message, error)
	Get(ctx context.Context, id string) (*message.Message, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*message.Message, error)

	// Reply sends an email answer to the message's sender and marks
	// the message replied.
	Reply(ctx context.Context, id string, subject, body string) error
}

type messageService struct {
	ServiceParams
}

func NewMessageService(params ServiceParams) MessageService {
	return &messageService{
		ServiceParams: params,
	}
}

func (s *messageService) Create(ctx context.Context, m *message.Message) (*message.Message, error) {
	if m == nil {
		return nil, ierr.NewError("message is required").
			WithHint("Message payload is missing").
			Mark(ierr.ErrValidation)
	}
	if m.Email == "" {
		return nil, ierr.NewError("sender email is required").
			WithHint("Sender email is required").
			Mark(ierr.ErrValidation)
	}
	if m.Body == "" {
		return nil, ierr.NewError("message body is required").
			WithHint("Message body is required").
			Mark(ierr.ErrValidation)
	}

	m.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MESSAGE)
	m.Replied = false
	m.RepliedAt = nil
	m.BaseModel = types.GetDefaultBaseModel(ctx)

	if err := s.MessageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.Logger.Infow("stored contact message", "message_id", m.ID)
	return m, nil
}

func (s *messageService) Get(ctx context.Context, id string) (*message.Message, error) {
	if id == "" {
		return nil, ierr.NewError("message id is required").
			WithHint("Message id is required").
			Mark(ierr.ErrValidation)
	}
	return s.MessageRepo.Get(ctx, id)
}

func (s *messageService) List(ctx context.Context, filter *types.QueryFilter) ([]*message.Message, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.MessageRepo.List(ctx, filter)
}

func (s *messageService) Reply(ctx context.Context, id string, subject, body string) error {
	if id == "" {
		return ierr.NewError("message id is required").
			WithHint("Message id is required").
			Mark(ierr.ErrValidation)
	}
	if subject == "" || body == "" {
		return ierr.NewError("subject and body are required").
			WithHint("Reply subject and body are required").
			Mark(ierr.ErrValidation)
	}

	if !s.EmailSender.IsEnabled() {
		return ierr.NewError("email sending is disabled").
			WithHint("Email sending is not configured").
			Mark(ierr.ErrInvalidOperation)
	}

	m, err := s.MessageRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.EmailSender.SendEmail(ctx, s.EmailSender.GetFromAddress(), m.Email, subject, "", body)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to send reply email").
			WithReportableDetails(map[string]any{
				"message_id": id,
			}).
			Mark(ierr.ErrSystem)
	}

	if err := s.MessageRepo.MarkReplied(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	s.Logger.Infow("replied to contact message", "message_id", id, "to", m.Email)
	return nil
}
