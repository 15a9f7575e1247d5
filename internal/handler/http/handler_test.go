package http

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mock"
	"github.com/MKhiriev/chick-care/internal/service"
	"github.com/MKhiriev/chick-care/models"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	auth          *mock.MockAuthService
	session       *mock.MockSessionService
	sensors       *mock.MockSensorService
	notifications *mock.MockNotificationService
	dashboard     *mock.MockDashboardService
	reset         *mock.MockPasswordResetService
	health        *mock.MockHealthService
	appInfo       *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SessionDuration: time.Hour,
		},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:          mock.NewMockAuthService(ctrl),
		session:       mock.NewMockSessionService(ctrl),
		sensors:       mock.NewMockSensorService(ctrl),
		notifications: mock.NewMockNotificationService(ctrl),
		dashboard:     mock.NewMockDashboardService(ctrl),
		reset:         mock.NewMockPasswordResetService(ctrl),
		health:        mock.NewMockHealthService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:          m.auth,
		SessionService:       m.session,
		SensorService:        m.sensors,
		NotificationService:  m.notifications,
		DashboardService:     m.dashboard,
		PasswordResetService: m.reset,
		HealthService:        m.health,
		AppInfoService:       m.appInfo,
	}
	return NewHandler(services, cfg, logger.Nop()), m
}

var (
	userSession  = models.Session{UserID: 2, Username: "farmer", Email: "f@example.com", Role: models.RoleUser}
	adminSession = models.Session{UserID: 1, Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
)

// expectSession makes the cookie "valid-<username>" resolve to session.
func expectSession(m handlerMocks, session models.Session) *http.Cookie {
	value := "valid-" + session.Username
	m.session.EXPECT().ParseSession(gomock.Any(), value).Return(session, nil).AnyTimes()
	return &http.Cookie{Name: sessionCookieName, Value: value}
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func body(rr *httptest.ResponseRecorder) string {
	b, _ := io.ReadAll(rr.Result().Body)
	return string(b)
}

func httptestGet(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func serveWith(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func wrapErr(outer, inner error) error {
	return fmt.Errorf("%w: %w", outer, inner)
}

func validationErr(err error) error {
	return wrapErr(service.ErrValidation, err)
}

func emptyView(session models.Session) models.DashboardView {
	return models.DashboardView{Session: session, Notifications: []models.Notification{}, Images: []string{}}
}
