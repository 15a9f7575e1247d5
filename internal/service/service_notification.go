package service

import (
	"context"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/models"
)

type notificationService struct {
	notificationRepository store.NotificationRepository

	logger *logger.Logger
}

// NewNotificationService returns the notification log service with input
// validation applied in front of the store.
func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return NewNotificationValidationService().Wrap(&notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	})
}

func (n *notificationService) Append(ctx context.Context, request models.InsertNotificationsRequest) (int, error) {
	inserted, err := n.notificationRepository.Append(ctx, request.Messages)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("messages", len(request.Messages)).Msg("error appending notifications")
		return 0, mapStoreError(err)
	}

	return inserted, nil
}

func (n *notificationService) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	notifications, err := n.notificationRepository.Recent(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("limit", limit).Msg("error reading notifications")
		return nil, mapStoreError(err)
	}

	return notifications, nil
}
