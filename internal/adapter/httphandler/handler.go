package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/paintmart/storefront/internal/core/domain"
)

// All handlers answer JSON. Domain error kinds map onto HTTP statuses
// here and nowhere else: validation is a client mistake, not_found is a
// missing row, policy means row-level security refused the statement.
func statusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindPolicy:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// writeError answers with the taxonomy kind and the classified message.
// Raw backend text never becomes the message; it only rides along in the
// diagnostic field.
func writeError(w http.ResponseWriter, op string, err error) {
	log := slog.With("op", op)

	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	} else {
		log.Warn("request rejected", "err", err)
	}

	message := "operation failed"
	var diagnostic string
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Msg
		if de.Err != nil {
			diagnostic = de.Err.Error()
		}
	} else {
		diagnostic = err.Error()
	}

	body := errorEnvelope{errorBody{
		Kind:       string(domain.KindOf(err)),
		Message:    message,
		Diagnostic: diagnostic,
	}}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidation("invalid JSON data")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, domain.NewValidation("id must be an integer")
	}
	return id, nil
}
