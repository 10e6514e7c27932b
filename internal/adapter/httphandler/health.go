package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/port"
)

type HealthHandler struct {
	service port.HealthService
}

func RegisterHealth(mux *http.ServeMux, service port.HealthService) {
	h := HealthHandler{service}
	mux.HandleFunc("GET /v1/health", h.Probe)
}

// Probe always answers 200; reachability lives in the body so the
// storefront can render a banner instead of a broken page.
func (h HealthHandler) Probe(w http.ResponseWriter, r *http.Request) {
	st := h.service.Probe(r.Context())

	body := struct {
		OK      bool   `json:"ok"`
		Warning string `json:"warning,omitempty"`
		Error   string `json:"error,omitempty"`
	}{st.OK, st.Warning, st.Error}
	writeJSON(w, http.StatusOK, body)
}
