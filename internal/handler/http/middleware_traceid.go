package http

import (
	"net/http"

	"github.com/MKhiriev/chick-care/internal/utils"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

// withTraceID gives every request a logger with a trace_id field and echoes
// the id back in X-Trace-ID. Ids sent by the notifier CLI are kept so one
// insert can be followed across both logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceIDHeader)
		if id == "" || len(id) > maxTraceIDLength {
			id = utils.NewTraceID()
		}
		w.Header().Set(traceIDHeader, id)

		reqLogger := h.logger.With().Str("trace_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}

