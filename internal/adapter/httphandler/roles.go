package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

type RolesHandler struct {
	service port.RolesService
}

func RegisterRoles(mux *http.ServeMux, service port.RolesService) {
	h := RolesHandler{service}
	mux.HandleFunc("POST /v1/roles", h.Grant)
	mux.HandleFunc("DELETE /v1/users/{id}/roles/{role}", h.Revoke)
	mux.HandleFunc("GET /v1/users/{id}/roles", h.ListForUser)
	mux.HandleFunc("GET /v1/users/{id}/admin", h.IsAdmin)
}

func (h RolesHandler) Grant(w http.ResponseWriter, r *http.Request) {
	const op = "RolesHandler.Grant"

	var ra RoleAssignment
	if err := decodeJSON(r, &ra); err != nil {
		writeError(w, op, err)
		return
	}

	ur := domain.UserRole{UserID: ra.UserID, Role: ra.Role}
	if err := h.service.Grant(r.Context(), ur); err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, ra)
}

func (h RolesHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	const op = "RolesHandler.Revoke"

	ur := domain.UserRole{
		UserID: r.PathValue("id"),
		Role:   r.PathValue("role"),
	}
	ok, err := h.service.Revoke(r.Context(), ur)
	if err != nil {
		writeError(w, op, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h RolesHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	const op = "RolesHandler.ListForUser"

	urs, err := h.service.ListForUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, op, err)
		return
	}

	ras := make([]RoleAssignment, len(urs))
	for i, ur := range urs {
		ras[i] = RoleAssignment{UserID: ur.UserID, Role: ur.Role}
	}
	writeJSON(w, http.StatusOK, ras)
}

func (h RolesHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	const op = "RolesHandler.IsAdmin"

	ok, err := h.service.IsAdmin(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, op, err)
		return
	}

	body := struct {
		UserID string `json:"user_id"`
		Admin  bool   `json:"admin"`
	}{r.PathValue("id"), ok}
	writeJSON(w, http.StatusOK, body)
}
