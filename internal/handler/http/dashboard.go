package http

import (
	"net/http"

	"github.com/MKhiriev/chick-care/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, pageDashboard, "Dashboard")
}

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, pageAdminDashboard, "Admin dashboard")
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, page, title string) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		h.writeError(w, r, http.StatusUnauthorized, ErrNoSession)
		return
	}

	view := h.services.DashboardService.Assemble(r.Context(), session)
	if wantsJSON(r) {
		utils.WriteJSON(w, view, http.StatusOK)
		return
	}

	h.render(w, r, page, pageData{
		Title:   title,
		Flash:   h.popFlash(w, r),
		Session: &session,
		View:    &view,
	}, http.StatusOK)
}
