package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

var (
	resetHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/reset_password.html"))
	resetText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/reset_password.txt"))
)

// ResetSubject is the subject line of password reset emails.
const ResetSubject = "ChickCare password reset"

type resetEmailData struct {
	Username string
	Link     string
	TTL      string
}

func newResetEmailData(username, link string, ttl time.Duration) resetEmailData {
	return resetEmailData{Username: username, Link: link, TTL: ttl.String()}
}

// renderReset returns the plain-text and HTML bodies of a reset email.
func renderReset(data resetEmailData) (string, string, error) {
	var text, html bytes.Buffer
	if err := resetText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("error rendering text body: %w", err)
	}
	if err := resetHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("error rendering html body: %w", err)
	}
	return text.String(), html.String(), nil
}
