package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/chick-care/internal/app"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/service"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/models"
)

func credentialsFromForm(r *http.Request) models.Credentials {
	return models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

func registrationFromForm(r *http.Request) models.RegistrationRequest {
	return models.RegistrationRequest{
		Email:    r.PostFormValue("email"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
}

// homeFor returns the landing page of a session.
func homeFor(session models.Session) string {
	if session.IsAdmin() {
		return "/admin_dashboard"
	}
	return "/dashboard"
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, homeFor(session), http.StatusSeeOther)
		return
	}

	h.render(w, r, pageLogin, pageData{Title: "Login", Flash: h.popFlash(w, r)}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	page := pageData{Title: "Login"}

	credentials, err := decodeBody(r, credentialsFromForm)
	if err != nil {
		log.Err(err).Msg("invalid login request")
		h.fail(w, r, pageLogin, page, err)
		return
	}
	page.Username = credentials.Username

	clientIP := clientAddress(r)
	if !h.loginAttempts.Allow(clientIP) {
		log.Warn().Str("ip", clientIP).Msg("login throttled")
		h.fail(w, r, pageLogin, page, ErrTooManyAttempts)
		return
	}

	session, err := h.services.AuthService.Authenticate(ctx, credentials)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.loginAttempts.Fail(clientIP)
		}
		h.fail(w, r, pageLogin, page, err)
		return
	}
	h.loginAttempts.Reset(clientIP)

	token, err := h.services.SessionService.CreateSession(ctx, session)
	if err != nil {
		h.fail(w, r, pageLogin, page, err)
		return
	}

	h.setSessionCookie(w, token)
	log.Info().Int64("id", session.UserID).Str("role", string(session.Role)).Msg("user logged in")
	h.succeed(w, r, homeFor(session), "", session, http.StatusOK)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageRegister, pageData{Title: "Register", Flash: h.popFlash(w, r)}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	page := pageData{Title: "Register"}

	request, err := decodeBody(r, registrationFromForm)
	if err != nil {
		log.Err(err).Msg("invalid registration request")
		h.fail(w, r, pageRegister, page, err)
		return
	}
	page.Username, page.Email = request.Username, request.Email

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		log.Info().Err(err).Str("username", request.Username).Msg("registration rejected")
		h.fail(w, r, pageRegister, page, err)
		return
	}

	h.succeed(w, r, "/login", app.MsgRegistrationSucceeded, user, http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		logger.FromRequest(r).Info().Int64("id", session.UserID).Msg("user logged out")
	}

	h.clearSessionCookie(w)
	h.succeed(w, r, "/login", app.MsgLoggedOut, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

// clientAddress returns the host part of RemoteAddr, the key of the login
// throttle. Proxy headers only reach it through RealIP, which is mounted when
// the server is configured to trust its proxy.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
