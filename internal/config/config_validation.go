// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// Defaults for fields left empty by every source.
const (
	DefaultHTTPAddress     = ":8080"
	DefaultSessionIssuer   = "chick-care"
	DefaultSessionDuration = 24 * time.Hour
	DefaultResetTokenTTL   = time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShotsDir        = "static/shots"
	DefaultMongoDatabase   = "chickcare"
	DefaultSMTPPort        = 587
	DefaultSeedAdminEmail  = "admin@localhost"
)

// minSignKeyLength is the shortest session signing key accepted at startup.
const minSignKeyLength = 16

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = DefaultResetTokenTTL
	}
	if cfg.App.ShotsDir == "" {
		cfg.App.ShotsDir = DefaultShotsDir
	}
	if cfg.App.SeedAdminEmail == "" {
		cfg.App.SeedAdminEmail = DefaultSeedAdminEmail
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = defaultBaseURL(cfg.Server.HTTPAddress)
	}
	if cfg.Storage.Mongo.URI != "" && cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = DefaultMongoDatabase
	}
	if cfg.Mail.Enabled() {
		if cfg.Mail.Port == 0 {
			cfg.Mail.Port = DefaultSMTPPort
		}
		if cfg.Mail.From == "" {
			cfg.Mail.From = cfg.Mail.Username
		}
	}
}

// defaultBaseURL derives a local origin from the listen address.
func defaultBaseURL(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "http://localhost"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func (cfg *StructuredConfig) normalize() error {
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")

	if cfg.Storage.DB.DSN == "" {
		return nil
	}

	dsn, err := NormalizeDatabaseURL(cfg.Storage.DB.DSN)
	if err != nil {
		return err
	}
	cfg.Storage.DB.DSN = dsn
	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database url is required", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.SessionSignKey) < minSignKeyLength {
		return fmt.Errorf("%w: session sign key must be at least %d characters", ErrInvalidAppConfigs, minSignKeyLength)
	}

	if cfg.App.SessionDuration < 0 || cfg.App.ResetTokenTTL < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	if _, err := url.Parse(cfg.App.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %v", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Mail.Enabled() && cfg.Mail.From == "" {
		return fmt.Errorf("%w: sender address is required", ErrInvalidMailConfigs)
	}

	return nil
}

// NormalizeDatabaseURL cleans a Postgres connection URL the way hosting
// dashboards tend to hand it out: a pasted "DATABASE_URL=" prefix and quotes
// are dropped, the postgres:// scheme becomes postgresql://, and
// sslmode=require is added when no sslmode is given.
func NormalizeDatabaseURL(raw string) (string, error) {
	dsn := strings.TrimSpace(raw)
	dsn = strings.TrimPrefix(dsn, "DATABASE_URL=")
	dsn = strings.Trim(dsn, `"'`)

	if strings.HasPrefix(dsn, "postgres://") {
		dsn = "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}

	if !strings.HasPrefix(dsn, "postgresql://") {
		return "", fmt.Errorf("%w: database url must start with postgres:// or postgresql://", ErrInvalidStorageConfigs)
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStorageConfigs, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: database url has no host", ErrInvalidStorageConfigs)
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
