package service

import (
	"context"
	"fmt"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.BannersService = (*BannersService)(nil)

type BannersService struct {
	repo     port.BannersRepository
	fallback port.CatalogFallback
}

func NewBanners(
	repo port.BannersRepository, fallback port.CatalogFallback,
) *BannersService {
	return &BannersService{repo: repo, fallback: fallback}
}

func (s *BannersService) List(ctx context.Context) ([]domain.Banner, error) {
	const op = "BannersService.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[[]domain.Banner]{
		{name: "primary", run: s.repo.List},
		{name: "bypass", when: onPolicy, run: s.repo.ListBypass},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) ([]domain.Banner, error) {
				return s.fallback.Banners(), nil
			}},
	})
}

func (s *BannersService) Get(
	ctx context.Context, id int64,
) (domain.Banner, error) {
	const op = "BannersService.Get"

	if err := ctx.Err(); err != nil {
		return domain.Banner{}, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[domain.Banner]{
		{name: "primary", run: func(ctx context.Context) (domain.Banner, error) {
			return s.repo.Get(ctx, id)
		}},
		{name: "bypass", when: onPolicy,
			run: func(ctx context.Context) (domain.Banner, error) {
				return s.repo.GetBypass(ctx, id)
			}},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) (domain.Banner, error) {
				for _, b := range s.fallback.Banners() {
					if b.ID == id {
						return b, nil
					}
				}
				return domain.Banner{}, domain.NewNotFound("read")
			}},
	})
}

func (s *BannersService) Create(
	ctx context.Context, b domain.Banner,
) (domain.Banner, error) {
	const op = "BannersService.Create"

	if err := b.Validate(); err != nil {
		return domain.Banner{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Banner{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.Create(ctx, b)
}

func (s *BannersService) Update(
	ctx context.Context, b domain.Banner,
) (*domain.Banner, error) {
	const op = "BannersService.Update"

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.Get(ctx, b.ID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (s *BannersService) Delete(
	ctx context.Context, id int64,
) (bool, error) {
	const op = "BannersService.Delete"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case domain.IsKind(err, domain.KindNotFound):
		return false, nil
	default:
		return false, err
	}
}
