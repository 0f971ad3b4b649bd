package notification

import (
	"context"

	"foodcycle-backend/domain"
)

type (
	NotificationService interface {
		GetUnreadNotifications(ctx context.Context, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkAsRead(ctx context.Context, id uint) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetUnreadNotifications(ctx context.Context, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetUnreadNotifications(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, domain.NotificationResponse{
			ID:        n.ID,
			Subject:   n.Subject,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return response, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uint) error {
	return s.notificationRepository.MarkAsRead(ctx, id)
}
