package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/release-notes-service/internal/config"
	"github.com/spec-kit/release-notes-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// All sends are best-effort: failures are logged and never reach the
// request that triggered them.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventContactSubmitted, n.handleContactSubmitted)
	n.dispatcher.Subscribe(events.EventReleasePublished, n.handleReleasePublished)
}

func (n *NotificationService) handleContactSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactSubmittedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ContactSubmitted", zap.String("message_id", payload.MessageID), zap.String("from", payload.Email))

	if n.cfg.SMTPUsername == "" || n.cfg.SMTPPassword == "" || n.cfg.ContactRecipient == "" {
		n.logger.Debug("smtp not configured, skipping contact email")
		return nil
	}

	if err := n.sendContactEmail(payload); err != nil {
		n.logger.Warn("failed to send contact email", zap.Error(err), zap.String("message_id", payload.MessageID))
	}
	return nil
}

func (n *NotificationService) handleReleasePublished(ctx context.Context, event events.Event) error {
	n.logger.Info("ReleasePublished", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendContactEmail(payload events.ContactSubmittedPayload) error {
	company := "Not provided"
	if payload.Company != nil {
		company = *payload.Company
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", n.cfg.EmailFrom)
	fmt.Fprintf(&body, "To: %s\r\n", n.cfg.ContactRecipient)
	fmt.Fprintf(&body, "Subject: New contact from %s\r\n\r\n", payload.Name)
	fmt.Fprintf(&body, "New contact form submission.\r\n\r\n")
	fmt.Fprintf(&body, "From: %s\r\nEmail: %s\r\nCompany: %s\r\n\r\n", payload.Name, payload.Email, company)
	fmt.Fprintf(&body, "Message:\r\n%s\r\n\r\n", payload.Message)
	fmt.Fprintf(&body, "Submitted at: %s\r\nReference ID: %s\r\n", payload.SubmittedAt.Format("2006-01-02 15:04:05"), payload.MessageID)

	addr := n.cfg.SMTPHost + ":" + n.cfg.SMTPPort
	auth := smtp.PlainAuth("", n.cfg.SMTPUsername, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, n.cfg.EmailFrom, []string{n.cfg.ContactRecipient}, []byte(body.String()))
}
