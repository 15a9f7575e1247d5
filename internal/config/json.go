package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSignKey    string   `json:"session_sign_key"`
		SessionIssuer     string   `json:"session_issuer"`
		SessionDuration   Duration `json:"session_duration"`
		ResetTokenTTL     Duration `json:"reset_token_ttl"`
		BaseURL           string   `json:"base_url"`
		ShotsDir          string   `json:"shots_dir"`
		SeedAdmin         bool     `json:"seed_admin"`
		SeedAdminPassword string   `json:"seed_admin_password"`
		SeedAdminEmail    string   `json:"seed_admin_email"`
		IngestAPIKey      string   `json:"ingest_api_key"`
		CookieSecure      bool     `json:"cookie_secure"`
		LogLevel          string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TrustProxy     bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:    jsonCfg.App.SessionSignKey,
			SessionIssuer:     jsonCfg.App.SessionIssuer,
			SessionDuration:   time.Duration(jsonCfg.App.SessionDuration),
			ResetTokenTTL:     time.Duration(jsonCfg.App.ResetTokenTTL),
			BaseURL:           jsonCfg.App.BaseURL,
			ShotsDir:          jsonCfg.App.ShotsDir,
			SeedAdmin:         jsonCfg.App.SeedAdmin,
			SeedAdminPassword: jsonCfg.App.SeedAdminPassword,
			SeedAdminEmail:    jsonCfg.App.SeedAdminEmail,
			IngestAPIKey:      jsonCfg.App.IngestAPIKey,
			CookieSecure:      jsonCfg.App.CookieSecure,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TrustProxy:     jsonCfg.Server.TrustProxy,
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
