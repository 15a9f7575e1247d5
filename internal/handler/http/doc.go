// Package http implements the HTTP transport layer of the application.
//
// It exposes the server-rendered pages (login, registration, password reset,
// dashboards), the JSON endpoints used by scripts and the notifier CLI, and
// the middleware that runs in front of them: request tracing, access
// logging, response compression, session cookie handling, the admin gate
// and the ingest API key check. Requests are delegated to the service layer
// once these concerns are handled.
package http
