package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/port"
)

type CategoriesHandler struct {
	service port.CategoriesService
}

func RegisterCategories(mux *http.ServeMux, service port.CategoriesService) {
	h := CategoriesHandler{service}
	mux.HandleFunc("GET /v1/categories", h.List)
	mux.HandleFunc("GET /v1/categories/{id}", h.Get)
	mux.HandleFunc("POST /v1/categories", h.Create)
	mux.HandleFunc("PUT /v1/categories/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/categories/{id}", h.Delete)
}

func (h CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.List"

	vs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesFromDomain(vs))
}

func (h CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Get"

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
	writeJSON(w, http.StatusOK, categoryFromDomain(v))
}

func (h CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Create"

	var c Category
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.service.Create(r.Context(), c.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, categoryFromDomain(v))
}

func (h CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Update"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	var c Category
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, op, err)
		return
	}
	c.ID = id

	v, err := h.service.Update(r.Context(), c.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, categoryFromDomain(*v))
}

func (h CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Delete"

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
