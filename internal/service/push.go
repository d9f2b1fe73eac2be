package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"volunteerhub-backend/internal/logger"
)

type fcmPushService struct {
	client *messaging.Client
}

// NewPushService builds an FCM-backed push sender from a service account
// credentials file. An empty path yields a no-op sender so environments
// without Firebase credentials still start.
func NewPushService(ctx context.Context, credentialsFile string) (PushService, error) {
	if credentialsFile == "" {
		logger.Warn("Firebase credentials not configured, push notifications disabled")
		return &noopPushService{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging client: %w", err)
	}
	return &fcmPushService{client: client}, nil
}

func (s *fcmPushService) SendPushNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	logger.ExternalServiceCall("fcm", "send", "title", title)

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	id, err := s.client.Send(ctx, msg)
	logger.ExternalServiceResult("fcm", "send", err, "message_id", id)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}

type noopPushService struct{}

func (s *noopPushService) SendPushNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	logger.Debug("Push notification skipped, sender disabled", "title", title)
	return nil
}
