package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/port"
)

type ProductsHandler struct {
	service port.ProductsService
	stats   port.UnitsSoldViewer
}

func RegisterProducts(
	mux *http.ServeMux, service port.ProductsService, stats port.UnitsSoldViewer,
) {
	h := ProductsHandler{service, stats}
	mux.HandleFunc("GET /v1/products", h.List)
	mux.HandleFunc("GET /v1/products/{id}", h.Get)
	mux.HandleFunc("POST /v1/products", h.Create)
	mux.HandleFunc("PUT /v1/products/{id}", h.Update)
	mux.HandleFunc("DELETE /v1/products/{id}", h.Delete)
	mux.HandleFunc("GET /v1/products/{id}/stats", h.Stats)
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"

	vs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, productsFromDomain(vs))
}

func (h ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Get"

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
	writeJSON(w, http.StatusOK, productFromDomain(v))
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"

	var p Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, op, err)
		return
	}

	v, err := h.service.Create(r.Context(), p.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, productFromDomain(v))
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	var p Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, op, err)
		return
	}
	p.ID = id

	v, err := h.service.Update(r.Context(), p.toDomain())
	if err != nil {
		writeError(w, op, err)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, productFromDomain(*v))
}

func (h ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Delete"

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

func (h ProductsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Stats"

	id, err := pathID(r)
	if err != nil {
		writeError(w, op, err)
		return
	}

	n, err := h.stats.UnitsSold(id)
	if err != nil {
		writeError(w, op, err)
		return
	}

	body := struct {
		ProductID int64 `json:"product_id"`
		UnitsSold int64 `json:"units_sold"`
	}{id, n}
	writeJSON(w, http.StatusOK, body)
}
