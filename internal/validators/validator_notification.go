package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/chick-care/models"
)

// Limits on one notification batch.
const (
	MaxMessagesPerRequest = 100
	MaxMessageLength      = 1000
)

// FieldMessages targets the message list of an insert request.
const FieldMessages = "messages"

// NotificationValidator validates notification batches.
type NotificationValidator struct{}

// NewNotificationValidator constructs a new NotificationValidator and returns
// it as the Validator interface.
func NewNotificationValidator() Validator {
	return &NotificationValidator{}
}

// Validate accepts models.InsertNotificationsRequest (value or pointer) and a
// bare []string of messages. A batch is rejected as a whole when any message
// is blank.
func (v *NotificationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InsertNotificationsRequest:
		return v.validateMessages(value.Messages, fields...)
	case *models.InsertNotificationsRequest:
		return v.validateMessages(value.Messages, fields...)
	case []string:
		return v.validateMessages(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NotificationValidator) validateMessages(messages []string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessages}
	}

	for _, f := range fields {
		if f != FieldMessages {
			return ErrUnknownField
		}

		if len(messages) == 0 {
			return ErrNoMessages
		}
		if len(messages) > MaxMessagesPerRequest {
			return ErrTooManyMessages
		}
		for _, message := range messages {
			if strings.TrimSpace(message) == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(message) > MaxMessageLength {
				return ErrMessageTooLong
			}
		}
	}

	return nil
}
