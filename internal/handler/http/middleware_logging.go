package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/chick-care/internal/logger"
)

// userIDSinkKey carries a pointer through which withSession reports the
// authenticated user back to withLogging, which runs earlier in the chain.
type userIDSinkKey struct{}

// withLogging writes one access-log line per request, after it completes.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}
		var userID int64

		next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), userIDSinkKey{}, &userID)))

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start))
		if userID != 0 {
			event = event.Int64("user_id", userID)
		}
		event.Send()
	})
}

func reportUserID(ctx context.Context, userID int64) {
	if sink, ok := ctx.Value(userIDSinkKey{}).(*int64); ok {
		*sink = userID
	}
}
