package message

import (
	"time"

	"github.com/atlasdoors/backoffice/internal/types"
)

// Message is a contact-form message from a prospective client. Staff
// reply by email from the admin dashboard.
type Message struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     string     `db:"email" json:"email"`
	Phone     string     `db:"phone" json:"phone"`
	Body      string     `db:"body" json:"body"`
	Replied   bool       `db:"replied" json:"replied"`
	RepliedAt *time.Time `db:"replied_at" json:"replied_at,omitempty"`
	types.BaseModel
}

func (m *Message) TableName() string {
	return "messages"
}
