package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/atlasdoors/backoffice/internal/domain/message"
	ierr "github.com/atlasdoors/backoffice/internal/errors"
	"github.com/atlasdoors/backoffice/internal/testutil"
)

type MessageServiceSuite struct {
	testutil.BaseServiceTestSuite
	service MessageService
}

func TestMessageService(t *testing.T) {
	suite.Run(t, new(MessageServiceSuite))
}

func (s *MessageServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewMessageService(ServiceParams{
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

func (s *MessageServiceSuite) createMessage() *message.Message {
	m, err := s.service.Create(s.GetContext(), &message.Message{
		Name:  "Mme Martin",
		Email: "martin@example.com",
		Phone: "+33 6 11 22 33 44",
		Body:  "Bonjour, je souhaite un devis pour une porte d'entrée.",
	})
	s.NoError(err)
	return m
}

func (s *MessageServiceSuite) TestCreateStoresUnreplied() {
	m := s.createMessage()
	s.Contains(m.ID, "msg")
	s.False(m.Replied)
	s.Nil(m.RepliedAt)
}

func (s *MessageServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.GetContext(), &message.Message{Body: "no sender"})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.Create(s.GetContext(), &message.Message{Email: "a@b.c"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *MessageServiceSuite) TestReplySendsAndMarks() {
	m := s.createMessage()

	err := s.service.Reply(s.GetContext(), m.ID, "Votre devis", "Voici notre proposition.")
	s.NoError(err)

	sender := s.GetEmailSender()
	s.Len(sender.Sent, 1)
	s.Equal("martin@example.com", sender.Sent[0].To)
	s.Equal("Votre devis", sender.Sent[0].Subject)

	stored, err := s.service.Get(s.GetContext(), m.ID)
	s.NoError(err)
	s.True(stored.Replied)
	s.NotNil(stored.RepliedAt)
}

func (s *MessageServiceSuite) TestReplyFailureLeavesMessageUnreplied() {
	m := s.createMessage()
	s.GetEmailSender().SendErr = errors.New("provider unavailable")

	err := s.service.Reply(s.GetContext(), m.ID, "Re", "body")
	s.Error(err)

	stored, err := s.service.Get(s.GetContext(), m.ID)
	s.NoError(err)
	s.False(stored.Replied)
}

func (s *MessageServiceSuite) TestReplyRequiresEnabledSender() {
	m := s.createMessage()
	s.GetEmailSender().Enabled = false

	err := s.service.Reply(s.GetContext(), m.ID, "Re", "body")
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
	s.Empty(s.GetEmailSender().Sent)
}

func (s *MessageServiceSuite) TestListNewestFirst() {
	first := s.createMessage()
	second := s.createMessage()

	messages, err := s.service.List(s.GetContext(), nil)
	s.NoError(err)
	s.Len(messages, 2)
	s.Equal(second.ID, messages[0].ID)
	s.Equal(first.ID, messages[1].ID)
}
