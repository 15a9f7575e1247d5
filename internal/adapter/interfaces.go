// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the chick-care JSON API.
//
// [ServerAdapter] is used by the notifier CLI to push messages into the
// notification log and to probe a running server. Non-2xx answers are mapped
// to the sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/chick-care/models"
)

// ServerAdapter talks to a running chick-care server.
type ServerAdapter interface {
	// InsertNotifications appends messages to the notification log and
	// returns how many were stored.
	InsertNotifications(ctx context.Context, messages []string) (int, error)

	// Health returns nil when the server and its database answer.
	Health(ctx context.Context) error

	// Version returns the build info of the server.
	Version(ctx context.Context) (models.VersionResponse, error)
}
