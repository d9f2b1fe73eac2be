package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"volunteerhub-backend/internal/logger"
)

type sendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewEmailService builds a SendGrid-backed sender. An empty API key yields a
// no-op sender for local development.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		logger.Warn("SendGrid API key not configured, email notifications disabled")
		return &noopEmailService{}
	}
	return &sendGridEmailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendRegistrationAcceptedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	subject := fmt.Sprintf("You're in: %s", opportunityTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news! Your application for %s has been accepted. "+
			"You have been added to the opportunity's group chat where the organizer will share next steps.\n\n"+
			"Thank you for volunteering!",
		name, opportunityTitle,
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) SendRegistrationRejectedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	subject := fmt.Sprintf("Update on your application for %s", opportunityTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nThank you for applying to %s. Unfortunately the organizer was unable to accept your application this time.\n\n"+
			"We hope you find another opportunity that fits you soon.",
		name, opportunityTitle,
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email with status %d", resp.StatusCode)
	}
	return nil
}

type noopEmailService struct{}

func (s *noopEmailService) SendRegistrationAcceptedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	logger.Debug("Email skipped, sender disabled", "to", email)
	return nil
}

func (s *noopEmailService) SendRegistrationRejectedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	logger.Debug("Email skipped, sender disabled", "to", email)
	return nil
}
