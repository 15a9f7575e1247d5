// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/handler/http"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/service"
)

var errNoHTTPAddress = errors.New("handler: no http address configured")

// Handlers groups the transport handlers the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Debug().Str("addr", cfg.Server.HTTPAddress).Msg("building http handlers")
	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
