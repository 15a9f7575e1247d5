package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// shotsURLPrefix is where camera snapshots are served from.
	shotsURLPrefix = "/static/shots/"

	// maxBodyBytes caps request bodies after gzip decoding. A full
	// notification batch fits with room to spare.
	maxBodyBytes = 1 << 20
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)
	router.Use(middleware.RequestSize(maxBodyBytes))
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.loginPage)
		r.Post("/", h.login)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/logout", h.logout)

		r.Get("/forgot_password", h.forgotPasswordPage)
		r.Post("/forgot_password", h.forgotPassword)
		r.Get("/reset_password/{token}", h.resetPasswordPage)
		r.Post("/reset_password/{token}", h.resetPassword)

		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	// machine-to-machine ingest
	router.With(h.withIngestKey).Post("/insert_notifications", h.insertNotifications)

	// routes for logged-in users
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/dashboard", h.dashboard)
		r.Get("/get_all_data", h.getAllData)
		r.Get("/get_all_notifications", h.getAllNotifications)
		r.Get("/api/sensors/{category}", h.getSensorReadings)

		r.With(h.requireAdmin).Get("/admin_dashboard", h.adminDashboard)

		if h.shotsDir != "" {
			r.Handle(shotsURLPrefix+"*", http.StripPrefix(shotsURLPrefix, http.FileServer(http.Dir(h.shotsDir))))
		}
	})

	notFound := func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, http.StatusNotFound, errNotFound)
	}
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, notFound))

	return router
}
