package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, accountID, pageSize, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, accountID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, accountID)
}
