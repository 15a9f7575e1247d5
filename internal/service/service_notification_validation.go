package service

import (
	"context"

	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
)

// NotificationServiceWrapper defines middleware composition for
// NotificationService. Implementations wrap an existing NotificationService
// to add behavior such as validation.
type NotificationServiceWrapper interface {
	Wrap(NotificationService) NotificationService
}

// NotificationValidationService rejects malformed batches before they reach
// the wrapped NotificationService.
type NotificationValidationService struct {
	inner     NotificationService
	validator validators.Validator
}

func NewNotificationValidationService() NotificationServiceWrapper {
	return &NotificationValidationService{
		validator: validators.NewNotificationValidator(),
	}
}

func (v *NotificationValidationService) Append(ctx context.Context, request models.InsertNotificationsRequest) (int, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, validationError(err)
	}

	return v.inner.Append(ctx, request)
}

func (v *NotificationValidationService) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	return v.inner.Recent(ctx, limit)
}

func (v *NotificationValidationService) Wrap(wrapped NotificationService) NotificationService {
	v.inner = wrapped
	return v
}
