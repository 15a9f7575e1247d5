// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// legacyEnv holds the unprefixed variable names older deployments use.
// They only fill fields the structured variables left empty.
type legacyEnv struct {
	SecretKey   string `env:"SECRET_KEY"`
	DatabaseURL string `env:"DATABASE_URL"`
	Port        string `env:"PORT"`
}

// loadDotEnv loads variables from the file at path into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Legacy variables are
// applied afterwards to the fields that are still empty.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}

	if cfg.App.SessionSignKey == "" {
		cfg.App.SessionSignKey = legacy.SecretKey
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = legacy.DatabaseURL
	}
	if cfg.Server.HTTPAddress == "" && legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + strings.TrimPrefix(legacy.Port, ":")
	}

	return nil
}
