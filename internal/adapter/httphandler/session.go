package httphandler

import (
	"context"
	"net/http"
)

// SessionManager opens and closes operator sessions. Signing out is the
// documented way to clear a recursive-policy state, so SignOut must
// succeed even when the backend is refusing reads.
type SessionManager interface {
	SignIn(ctx context.Context, userID string) (token string, err error)
	SignOut(ctx context.Context, token string) error
}

type SessionHandler struct {
	sessions SessionManager
}

func RegisterSessions(mux *http.ServeMux, sessions SessionManager) {
	h := SessionHandler{sessions}
	mux.HandleFunc("POST /v1/auth/signin", h.SignIn)
	mux.HandleFunc("POST /v1/auth/signout", h.SignOut)
}

func (h SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.SignIn"

	var req struct {
		UserID string `json:"user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, op, err)
		return
	}

	token, err := h.sessions.SignIn(r.Context(), req.UserID)
	if err != nil {
		writeError(w, op, err)
		return
	}

	body := struct {
		Token string `json:"token"`
	}{token}
	writeJSON(w, http.StatusCreated, body)
}

func (h SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.SignOut"

	token := r.Header.Get("X-Session-Token")
	if err := h.sessions.SignOut(r.Context(), token); err != nil {
		writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
