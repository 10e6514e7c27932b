package httphandler

import (
	"net/http"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

// ReceiptRenderer turns a completed sale into printable text.
type ReceiptRenderer interface {
	Render(domain.Sale) (string, error)
}

type SalesHandler struct {
	service  port.SalesService
	receipts ReceiptRenderer
}

func RegisterSales(
	mux *http.ServeMux, service port.SalesService, receipts ReceiptRenderer,
) {
	h := SalesHandler{service, receipts}
	mux.HandleFunc("POST /v1/sales", h.Checkout)
	mux.HandleFunc("GET /v1/sales", h.List)
	mux.HandleFunc("GET /v1/sales/{id}", h.Get)
	mux.HandleFunc("DELETE /v1/sales/{id}", h.Delete)
	mux.HandleFunc("GET /v1/sales/{id}/receipt", h.Receipt)
}

func (h SalesHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.Checkout"

	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	customer, currency, lines := req.toDomain()
	v, err := h.service.Checkout(r.Context(), customer, currency, lines)
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, saleFromDomain(v))
}

func (h SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.List"

	vs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, salesFromDomain(vs))
}

func (h SalesHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.Get"

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
	writeJSON(w, http.StatusOK, saleFromDomain(v))
}

func (h SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.Delete"

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

func (h SalesHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.Receipt"

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

	text, err := h.receipts.Render(v)
	if err != nil {
		writeError(w, op, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		writeError(w, op, err)
	}
}
