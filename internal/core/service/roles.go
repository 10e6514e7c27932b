package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.RolesService = (*RolesService)(nil)

// RolesService answers role questions and caches admin checks per user.
// The cache exists because the admin check may have to walk the whole
// bypass chain; it is dropped on any session change.
type RolesService struct {
	repo port.RolesRepository

	mu         sync.Mutex
	adminCache map[string]bool
}

func NewRoles(repo port.RolesRepository) *RolesService {
	return &RolesService{
		repo:       repo,
		adminCache: make(map[string]bool),
	}
}

func (s *RolesService) Grant(
	ctx context.Context, ur domain.UserRole,
) error {
	const op = "RolesService.Grant"

	if err := ur.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Grant(ctx, ur); err != nil {
		return err
	}
	s.invalidate(ur.UserID)
	return nil
}

func (s *RolesService) Revoke(
	ctx context.Context, ur domain.UserRole,
) (bool, error) {
	const op = "RolesService.Revoke"

	if err := ur.Validate(); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	err := s.repo.Revoke(ctx, ur)
	switch {
	case err == nil:
		s.invalidate(ur.UserID)
		return true, nil
	case domain.IsKind(err, domain.KindNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *RolesService) ListForUser(
	ctx context.Context, userID string,
) ([]domain.UserRole, error) {
	const op = "RolesService.ListForUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.ListForUser(ctx, userID)
}

func (s *RolesService) IsAdmin(
	ctx context.Context, userID string,
) (bool, error) {
	const op = "RolesService.IsAdmin"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	cached, ok := s.adminCache[userID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	isAdmin, err := s.repo.CheckAdmin(ctx, userID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.adminCache[userID] = isAdmin
	s.mu.Unlock()
	return isAdmin, nil
}

// Reset drops every cached admin answer; called when a session changes so
// roles are re-evaluated against the backend.
func (s *RolesService) Reset() {
	s.mu.Lock()
	s.adminCache = make(map[string]bool)
	s.mu.Unlock()
}

func (s *RolesService) invalidate(userID string) {
	s.mu.Lock()
	delete(s.adminCache, userID)
	s.mu.Unlock()
}
