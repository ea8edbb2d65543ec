package dto

import (
	"github.com/atlasdoors/backoffice/internal/domain/message"
)

// CreateMessageRequest is a contact-form submission.
type CreateMessageRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Body  string `json:"body" binding:"required"`
}

func (r *CreateMessageRequest) ToMessage() *message.Message {
	return &message.Message{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Body:  r.Body,
	}
}

// ReplyMessageRequest is the staff answer emailed to the sender.
type ReplyMessageRequest struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}
