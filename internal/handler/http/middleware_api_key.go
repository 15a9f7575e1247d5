package http

import (
	"net/http"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/utils"
)

const apiKeyHeader = "X-API-Key"

// withIngestKey guards the ingest endpoint with the configured API key.
// Without a configured key the endpoint stays open.
func (h *Handler) withIngestKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.ingestAPIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !utils.SecureCompare(r.Header.Get(apiKeyHeader), h.ingestAPIKey) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("ingest request with invalid api key")
			utils.WriteJSON(w, errorBody(ErrInvalidAPIKey), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
