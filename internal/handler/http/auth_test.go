package http

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/chick-care/internal/app"
	"github.com/MKhiriev/chick-care/internal/service"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signedToken(value string) models.SessionToken {
	return models.SessionToken{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		SignedString:     value,
	}
}

func TestLoginPage(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())

	for _, path := range []string{"/", "/login"} {
		rr := serve(h, httptestGet(path))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.Contains(t, body(rr), `name="username"`)
	}
}

func TestLoginPage_LoggedInRedirects(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	req := httptestGet("/login")
	req.AddCookie(expectSession(m, adminSession))

	rr := serve(h, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin_dashboard", rr.Header().Get("Location"))
}

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t, testConfig())

	m.auth.EXPECT().Authenticate(gomock.Any(), models.Credentials{Username: "farmer", Password: "password1"}).Return(userSession, nil)
	m.session.EXPECT().CreateSession(gomock.Any(), userSession).Return(signedToken("signed-token"), nil)

	rr := serve(h, formRequest(http.MethodPost, "/login", url.Values{"username": {"farmer"}, "password": {"password1"}}))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
	cookie := responseCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_JSON(t *testing.T) {
	h, m := newTestHandler(t, testConfig())

	m.auth.EXPECT().Authenticate(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).Return(adminSession, nil)
	m.session.EXPECT().CreateSession(gomock.Any(), adminSession).Return(signedToken("t"), nil)

	rr := serve(h, jsonRequest(http.MethodPost, "/", `{"username":"admin","password":"secret"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"uid":1,"username":"admin","email":"admin@example.com","role":"admin"}`, body(rr))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"missing field", validationErr(validators.ErrEmptyUsername), http.StatusBadRequest, app.MsgMissingFields},
		{"database down", wrapErr(service.ErrUnavailable, store.ErrUnavailable), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, testConfig())
			m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Session{}, tt.err)

			rr := serve(h, formRequest(http.MethodPost, "/login", url.Values{"username": {"farmer"}, "password": {"x"}}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, body(rr), tt.wantMsg)
			assert.Contains(t, body(rr), `value="farmer"`, "username is kept in the form")
			assert.Nil(t, responseCookie(rr, sessionCookieName))
		})
	}
}

func TestLogin_Throttled(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrInvalidCredentials).Times(loginAttemptsLimit)

	router := h.Init()
	for i := 0; i < loginAttemptsLimit; i++ {
		rr := serveWith(router, jsonRequest(http.MethodPost, "/login", `{"username":"farmer","password":"bad"}`))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	}

	rr := serveWith(router, jsonRequest(http.MethodPost, "/login", `{"username":"farmer","password":"good"}`))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgTooManyLoginAttempts+`"}`, body(rr))
}

func TestLogin_ThrottleIgnoresForwardedFor(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrInvalidCredentials).Times(loginAttemptsLimit)

	router := h.Init()
	statuses := map[int]int{}
	for i := 0; i < 3*loginAttemptsLimit; i++ {
		req := jsonRequest(http.MethodPost, "/login", `{"username":"farmer","password":"bad"}`)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		statuses[serveWith(router, req).Code]++
	}

	assert.Equal(t, map[int]int{
		http.StatusUnauthorized:    loginAttemptsLimit,
		http.StatusTooManyRequests: 2 * loginAttemptsLimit,
	}, statuses)
}

func TestLogin_TrustedProxyKeysOnForwardedFor(t *testing.T) {
	cfg := testConfig()
	cfg.Server.TrustProxy = true
	h, m := newTestHandler(t, cfg)
	m.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrInvalidCredentials).Times(loginAttemptsLimit + 1)

	router := h.Init()
	attempt := func(ip string) int {
		req := jsonRequest(http.MethodPost, "/login", `{"username":"farmer","password":"bad"}`)
		req.Header.Set("X-Forwarded-For", ip)
		return serveWith(router, req).Code
	}
	for i := 0; i < loginAttemptsLimit; i++ {
		require.Equal(t, http.StatusUnauthorized, attempt("203.0.113.7"))
	}

	assert.Equal(t, http.StatusTooManyRequests, attempt("203.0.113.7"))
	assert.Equal(t, http.StatusUnauthorized, attempt("203.0.113.8"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())

	rr := serve(h, jsonRequest(http.MethodPost, "/login", `{"username":`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	request := models.RegistrationRequest{Email: "f@example.com", Username: "farmer", Password: "password1"}
	m.auth.EXPECT().Register(gomock.Any(), request).Return(models.User{UserID: 2, Username: "farmer"}, nil)

	rr := serve(h, formRequest(http.MethodPost, "/register", url.Values{
		"email": {"f@example.com"}, "username": {"farmer"}, "password": {"password1"},
	}))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	require.NotNil(t, responseCookie(rr, flashCookieName))
}

func TestRegister_Duplicate(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, wrapErr(service.ErrDuplicate, store.ErrEmailTaken))

	rr := serve(h, jsonRequest(http.MethodPost, "/register", `{"email":"f@example.com","username":"farmer","password":"password1"}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"`+app.MsgAccountAlreadyExists+`"}`, body(rr))
}

func TestRegister_ShortPassword(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, validationErr(validators.ErrPasswordTooShort))

	rr := serve(h, formRequest(http.MethodPost, "/register", url.Values{"email": {"f@example.com"}, "username": {"farmer"}, "password": {"x"}}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, body(rr), app.MsgPasswordTooShort)
	assert.Contains(t, body(rr), `value="f@example.com"`)
}

func TestLogout(t *testing.T) {
	h, m := newTestHandler(t, testConfig())
	req := httptestGet("/logout")
	req.AddCookie(expectSession(m, userSession))

	rr := serve(h, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	cookie := responseCookie(rr, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestFlashShownOnce(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())
	rr := serve(h, httptestGet("/logout"))
	flash := responseCookie(rr, flashCookieName)
	require.NotNil(t, flash)

	req := httptestGet("/login")
	req.AddCookie(flash)
	rr = serve(h, req)

	assert.Contains(t, body(rr), app.MsgLoggedOut)
	cleared := responseCookie(rr, flashCookieName)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}
