package mailer

import "errors"

var (
	ErrNoRecipient   = errors.New("recipient has no email address")
	ErrBuildMessage  = errors.New("error building email message")
	ErrSendingEmail  = errors.New("error sending email")
	ErrInvalidConfig = errors.New("invalid smtp configuration")
)
