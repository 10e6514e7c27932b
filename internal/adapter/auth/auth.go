// Package auth is the operator session boundary. Role caches key off the
// signed-in user, so every session change fans out to subscribers which
// drop their cached state.
package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/paintmart/storefront/internal/core/domain"
)

type sqldb interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Sessions struct {
	db sqldb

	mu   sync.Mutex
	subs []chan struct{}
}

func NewSessions(db sqldb) *Sessions {
	return &Sessions{db: db}
}

// Subscribe returns a channel that receives one signal per session
// change. The channel is never closed and signals are dropped when the
// subscriber is not draining.
func (s *Sessions) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Sessions) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Sessions) SignIn(
	ctx context.Context, userID string,
) (string, error) {
	const op = "Sessions.SignIn"
	log := slog.With("op", op)

	if userID == "" {
		return "", domain.NewValidation("user id is required")
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	stmt := `
	INSERT INTO sessions (token, user_id)
	VALUES ($1, $2);
	`
	if _, err := s.db.ExecContext(ctx, stmt, token, userID); err != nil {
		return "", domain.NewOther("create", fmt.Errorf("%s: %w", op, err))
	}

	log.Info("session opened", "userID", userID)
	s.notify()
	return token, nil
}

// SignOut tears the session down even when the token is already gone;
// signing out must always work, it is the recovery path for recursive
// policy states.
func (s *Sessions) SignOut(ctx context.Context, token string) error {
	const op = "Sessions.SignOut"
	log := slog.With("op", op)

	stmt := `
	DELETE FROM sessions
	WHERE token = $1;
	`
	if _, err := s.db.ExecContext(ctx, stmt, token); err != nil {
		log.Warn("session row not removed", "err", err)
	}

	log.Info("session closed")
	s.notify()
	return nil
}

func (s *Sessions) UserID(ctx context.Context, token string) (string, error) {
	const op = "Sessions.UserID"

	if token == "" {
		return "", domain.NewValidation("token is required")
	}

	stmt := `
	SELECT user_id FROM sessions
	WHERE token = $1;
	`
	var userID string
	err := s.db.QueryRowContext(ctx, stmt, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewNotFound("read")
		}
		return "", domain.NewOther("read", fmt.Errorf("%s: %w", op, err))
	}
	return userID, nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
