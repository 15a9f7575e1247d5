package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/models"
	"github.com/go-resty/resty/v2"
)

const (
	apiKeyHeader  = "X-API-Key"
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for cfg.ServerURL. A bare
// host:port is accepted and gets the http scheme.
func NewHTTPServerAdapter(cfg config.Notifier, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: strings.TrimSpace(cfg.APIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// InsertNotifications implements [ServerAdapter]. The JSON body is sent
// gzip-compressed.
func (h *httpServerAdapter) InsertNotifications(ctx context.Context, messages []string) (int, error) {
	body, err := gzipJSON(models.InsertNotificationsRequest{Messages: messages})
	if err != nil {
		return 0, fmt.Errorf("encode notifications: %w", err)
	}

	var result models.InsertNotificationsResponse
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetBody(body).
		SetResult(&result)
	if h.apiKey != "" {
		req.SetHeader(apiKeyHeader, h.apiKey)
	}

	resp, err := req.Post("/insert_notifications")
	if err != nil {
		return 0, fmt.Errorf("insert notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.logger.Debug().Int("inserted", result.Inserted).Msg("notifications sent")
	return result.Inserted, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).SetResult(&version).Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// request starts a request carrying a fresh trace id, so the call can be
// found in the server log.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	traceID := utils.NewTraceID()
	h.logger.Debug().Str("trace_id", traceID).Msg("sending request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
}

func gzipJSON(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err = zw.Write(payload); err != nil {
		return nil, err
	}
	if err = zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
