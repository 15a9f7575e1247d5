// Package mailer delivers password reset emails.
//
// An SMTP relay (github.com/wneessen/go-mail) is used when one is configured.
// Otherwise reset links are written to the log so that a development setup
// stays usable without a mail server.
package mailer
