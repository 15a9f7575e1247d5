package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/models"
	"github.com/go-chi/chi/v5"
)

// defaultAPILimit is the row count of the JSON read endpoints without ?limit=.
const defaultAPILimit = 50

func (h *Handler) getAllData(w http.ResponseWriter, r *http.Request) {
	h.writeReadings(w, r, models.Environment)
}

func (h *Handler) getSensorReadings(w http.ResponseWriter, r *http.Request) {
	h.writeReadings(w, r, models.SensorCategory(chi.URLParam(r, "category")))
}

func (h *Handler) writeReadings(w http.ResponseWriter, r *http.Request, category models.SensorCategory) {
	limit, err := limitFromQuery(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	readings, err := h.services.SensorService.Latest(r.Context(), category, limit)
	if err != nil {
		h.writeError(w, r, statusFromError(err), err)
		return
	}

	utils.WriteJSON(w, models.SensorReadingsResponse{
		Category: category,
		Readings: readings,
		Length:   len(readings),
	}, http.StatusOK)
}

func (h *Handler) getAllNotifications(w http.ResponseWriter, r *http.Request) {
	limit, err := limitFromQuery(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	notifications, err := h.services.NotificationService.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, statusFromError(err), err)
		return
	}

	utils.WriteJSON(w, models.NotificationsResponse{
		Notifications: notifications,
		Length:        len(notifications),
	}, http.StatusOK)
}

func (h *Handler) insertNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.InsertNotificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		err = bodyError(ErrInvalidJSON, err)
		h.writeError(w, r, statusFromError(err), err)
		return
	}

	inserted, err := h.services.NotificationService.Append(r.Context(), request)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("notifications were not stored")
		}
		h.writeError(w, r, status, err)
		return
	}

	log.Info().Int("inserted", inserted).Msg("notifications stored")
	utils.WriteJSON(w, models.InsertNotificationsResponse{Inserted: inserted}, http.StatusCreated)
}

// limitFromQuery parses ?limit=. Range clamping is left to the store.
func limitFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultAPILimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return limit, nil
}
