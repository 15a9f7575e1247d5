// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// Account forms (login, registration, password reset) and notification
// batches each have their own [Validator]. Failures are sentinel errors from
// errors.go; services wrap them with their validation error so handlers can
// both pick the HTTP status and show the exact message.
package validators

import "context"

// Validator checks value. When fields are given only those fields are
// checked; otherwise every field the value carries is.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
