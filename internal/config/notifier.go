package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const defaultNotifierTimeout = 10 * time.Second

// Notifier configures the notifier CLI that posts messages to a running
// chick-care server.
type Notifier struct {
	// ServerURL is the base URL of the server (e.g. "http://localhost:8080").
	// Env: NOTIFIER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// APIKey is sent as X-API-Key. Must match APP_INGEST_API_KEY on the server
	// when that is set.
	// Env: NOTIFIER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds every request, retries included.
	// Env: NOTIFIER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Probe makes the CLI check /health and /version instead of sending.
	Probe bool
}

// GetNotifierConfig loads the notifier configuration from the .env file,
// the environment and args. Flags win over the environment. The positional
// arguments left after the flags are returned as well.
func GetNotifierConfig(args []string) (*Notifier, []string, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, nil, err
	}

	envCfg := new(Notifier)
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "NOTIFIER_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, rest, err := parseNotifierFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(Notifier)
	for _, c := range []*Notifier{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultBaseURL(DefaultHTTPAddress)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultNotifierTimeout
	}

	return cfg, rest, nil
}

// parseNotifierFlags parses:
//
//	-s server base URL
//	-k ingest API key
//	-t request timeout (e.g., "5s")
//	-health probe the server instead of sending messages
func parseNotifierFlags(args []string) (*Notifier, []string, error) {
	cfg := new(Notifier)

	fs := flag.NewFlagSet("notifier", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "s", "", "Server base URL")
	fs.StringVar(&cfg.APIKey, "k", "", "Ingest API key")
	fs.DurationVar(&cfg.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.BoolVar(&cfg.Probe, "health", false, "Probe the server health")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
