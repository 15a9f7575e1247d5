package http

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names, one template file each.
const (
	pageLogin          = "login"
	pageRegister       = "register"
	pageForgotPassword = "forgot_password"
	pageResetPassword  = "reset_password"
	pageDashboard      = "dashboard"
	pageAdminDashboard = "admin_dashboard"
)

var pageNames = []string{
	pageLogin, pageRegister, pageForgotPassword, pageResetPassword, pageDashboard, pageAdminDashboard,
}

type pages map[string]*template.Template

// pageData is what every page template receives.
type pageData struct {
	Title   string
	Flash   string
	Error   string
	Session *models.Session

	// Username and Email refill forms after a failed submit.
	Username string
	Email    string
	Token    string

	View *models.DashboardView
}

var templateFuncs = template.FuncMap{
	"field":    readingField,
	"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
}

func mustParsePages() pages {
	p := make(pages, len(pageNames))
	for _, name := range pageNames {
		p[name] = template.Must(template.New("base.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/base.html", "templates/partials.html", "templates/"+name+".html"))
	}
	return p
}

// readingField formats one value of a reading for display. Missing readings
// and NULL columns render as a dash.
func readingField(reading *models.SensorReading, name string) string {
	if reading == nil {
		return "-"
	}

	switch v := reading.Values[name].(type) {
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	case bool:
		if v {
			return "on"
		}
		return "off"
	case string:
		return v
	default:
		return "-"
	}
}

// wantsJSON reports whether the client asked for a JSON answer instead of a
// page or a redirect.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData, status int) {
	tmpl, ok := h.pages[name]
	if !ok {
		logger.FromRequest(r).Error().Str("page", name).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data.Session == nil {
		if session, ok := utils.GetSessionFromContext(r.Context()); ok {
			data.Session = &session
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("error rendering page")
	}
}

// writeError answers with the catalog message of err: as JSON for API
// clients, as a plain page otherwise.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if wantsJSON(r) || isAPIRequest(r) {
		utils.WriteJSON(w, errorBody(err), status)
		return
	}
	http.Error(w, messageFromError(err), status)
}

func errorBody(err error) models.ErrorResponse {
	return models.ErrorResponse{Error: messageFromError(err)}
}

// fail answers a failed form submission. The page is rendered again with the
// error message; JSON clients get {"error": ...}. Server-side failures are
// logged with their full chain.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, page string, data pageData, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}

	if wantsJSON(r) {
		utils.WriteJSON(w, errorBody(err), status)
		return
	}

	data.Error = messageFromError(err)
	h.render(w, r, page, data, status)
}

// succeed finishes a form submission: JSON clients get payload with status,
// browsers get a flash message and a 303 redirect to location.
func (h *Handler) succeed(w http.ResponseWriter, r *http.Request, location, flash string, payload any, status int) {
	if wantsJSON(r) {
		utils.WriteJSON(w, payload, status)
		return
	}

	if flash != "" {
		h.setFlash(w, flash)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// decodeBody fills dst from a JSON body or, for browsers, from the parsed
// form via fromForm.
func decodeBody[T any](r *http.Request, fromForm func(r *http.Request) T) (T, error) {
	var dst T
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&dst); err != nil {
			return dst, bodyError(ErrInvalidJSON, err)
		}
		return dst, nil
	}

	if err := r.ParseForm(); err != nil {
		return dst, bodyError(ErrInvalidForm, err)
	}
	return fromForm(r), nil
}
