package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-mongo-uri MongoDB URI for sensor readings
//	-c/-config json file path with configs
//	-session-sign-key session signing key
//	-session-duration session lifetime (e.g., "24h")
//	-reset-token-ttl reset link lifetime (e.g., "1h")
//	-base-url public base URL for reset links
//	-shots-dir directory with camera snapshots
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-seed-admin create the admin account at startup
//	-trust-proxy take client addresses from X-Forwarded-For / X-Real-IP
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, mongoURI string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionDuration, resetTokenTTL, requestTimeout time.Duration
	var baseURL, shotsDir string
	var seedAdmin, trustProxy bool

	fs := flag.NewFlagSet("chick-care", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI for sensor readings")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.DurationVar(&resetTokenTTL, "reset-token-ttl", 0, "Reset token lifetime (e.g., 1h)")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL")
	fs.StringVar(&shotsDir, "shots-dir", "", "Camera snapshots directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&seedAdmin, "seed-admin", false, "Create the admin account at startup")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Take client addresses from proxy headers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionDuration: sessionDuration,
			ResetTokenTTL:   resetTokenTTL,
			BaseURL:         baseURL,
			ShotsDir:        shotsDir,
			SeedAdmin:       seedAdmin,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Mongo: Mongo{URI: mongoURI},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			TrustProxy:     trustProxy,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is empty
// or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
