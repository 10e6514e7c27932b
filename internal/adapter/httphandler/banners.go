package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/port"
)

type BannersHandler struct {
	service port.BannersService
}

func RegisterBanners(mux *http.ServeMux, service port.BannersService) {
	h := BannersHandler{service}
	mux.HandleFunc("GET /v1/banners", h.List)
	mux.HandleFunc("GET /v1/banners/{id}", h.Get)
	mux.HandleFunc("POST /v1/banners", h.Create)
	mux.HandleFunc("PUT /v1/banners/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/banners/{id}", h.Delete)
}

func (h BannersHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "BannersHandler.List"

	vs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, bannersFromDomain(vs))
}

func (h BannersHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "BannersHandler.Get"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, bannerFromDomain(v))
}

func (h BannersHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "BannersHandler.Create"

	var b Banner
	if err := decodeJSON(r, &b); err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.service.Create(r.Context(), b.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, bannerFromDomain(v))
}

func (h BannersHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "BannersHandler.Update"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	var b Banner
	if err := decodeJSON(r, &b); err != nil {
		writeError(w, op, err)
		return
	}
	b.ID = id

	v, err := h.service.Update(r.Context(), b.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, bannerFromDomain(*v))
}

func (h BannersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "BannersHandler.Delete"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	ok, err := h.service.Delete(r.Context(), id)
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
