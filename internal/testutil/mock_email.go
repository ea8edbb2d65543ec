package testutil

import (
	"context"
	"fmt"

	"github.com/atlasdoors/backoffice/internal/email"
	"github.com/atlasdoors/backoffice/internal/types"
)

var _ email.Sender = (*MockEmailSender)(nil)

// SentEmail captures one outbound email for assertions.
type SentEmail struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// MockEmailSender records sends instead of calling the provider.
type MockEmailSender struct {
	Enabled bool
	SendErr error
	Sent    []SentEmail
}

func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{Enabled: true}
}

func (m *MockEmailSender) IsEnabled() bool {
	return m.Enabled
}

func (m *MockEmailSender) GetFromAddress() string {
	return "office@atlasdoors.test"
}

func (m *MockEmailSender) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	if m.SendErr != nil {
		return "", m.SendErr
	}
	m.Sent = append(m.Sent, SentEmail{
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    htmlContent,
		Text:    textContent,
	})
	return fmt.Sprintf("email-%s", types.GenerateUUID()), nil
}
