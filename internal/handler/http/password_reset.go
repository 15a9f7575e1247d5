package http

import (
	"net/http"

	"github.com/MKhiriev/chick-care/internal/app"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
	"github.com/go-chi/chi/v5"
)

func resetRequestFromForm(r *http.Request) models.PasswordResetRequest {
	return models.PasswordResetRequest{Email: r.PostFormValue("email")}
}

func newPasswordFromForm(r *http.Request) models.NewPasswordRequest {
	return models.NewPasswordRequest{Password: r.PostFormValue("password")}
}

func (h *Handler) forgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageForgotPassword, pageData{Title: "Forgot password", Flash: h.popFlash(w, r)}, http.StatusOK)
}

// forgotPassword answers every well-formed request with the same message,
// whether or not the address belongs to an account.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	page := pageData{Title: "Forgot password"}

	request, err := decodeBody(r, resetRequestFromForm)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid password reset request")
		h.fail(w, r, pageForgotPassword, page, err)
		return
	}
	page.Email = request.Email

	if err = h.services.PasswordResetService.RequestReset(r.Context(), request); err != nil {
		h.fail(w, r, pageForgotPassword, page, err)
		return
	}

	h.succeed(w, r, "/login", app.MsgResetRequested, models.MessageResponse{Message: app.MsgResetRequested}, http.StatusOK)
}

func (h *Handler) resetPasswordPage(w http.ResponseWriter, r *http.Request) {
	page := pageData{
		Title: "Reset password",
		Flash: h.popFlash(w, r),
		Token: chi.URLParam(r, "token"),
	}
	h.render(w, r, pageResetPassword, page, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	page := pageData{Title: "Reset password", Token: token}

	request, err := decodeBody(r, newPasswordFromForm)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid new password request")
		h.fail(w, r, pageResetPassword, page, err)
		return
	}
	request.Token = token

	if err = h.services.PasswordResetService.ConsumeToken(r.Context(), request); err != nil {
		h.fail(w, r, pageResetPassword, page, err)
		return
	}

	h.succeed(w, r, "/login", app.MsgPasswordResetSucceeded, models.MessageResponse{Message: app.MsgPasswordResetSucceeded}, http.StatusOK)
}
