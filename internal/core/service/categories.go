package service

import (
	"context"
	"fmt"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.CategoriesService = (*CategoriesService)(nil)

type CategoriesService struct {
	repo     port.CategoriesRepository
	fallback port.CatalogFallback
}

func NewCategories(
	repo port.CategoriesRepository, fallback port.CatalogFallback,
) *CategoriesService {
	return &CategoriesService{repo: repo, fallback: fallback}
}

func (s *CategoriesService) List(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesService.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[[]domain.Category]{
		{name: "primary", run: s.repo.List},
		{name: "bypass", when: onPolicy, run: s.repo.ListBypass},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) ([]domain.Category, error) {
				return s.fallback.Categories(), nil
			}},
	})
}

func (s *CategoriesService) Get(
	ctx context.Context, id int64,
) (domain.Category, error) {
	const op = "CategoriesService.Get"

	if err := ctx.Err(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[domain.Category]{
		{name: "primary", run: func(ctx context.Context) (domain.Category, error) {
			return s.repo.Get(ctx, id)
		}},
		{name: "bypass", when: onPolicy,
			run: func(ctx context.Context) (domain.Category, error) {
				return s.repo.GetBypass(ctx, id)
			}},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) (domain.Category, error) {
				for _, c := range s.fallback.Categories() {
					if c.ID == id {
						return c, nil
					}
				}
				return domain.Category{}, domain.NewNotFound("read")
			}},
	})
}

func (s *CategoriesService) Create(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	const op = "CategoriesService.Create"

	if err := c.Validate(); err != nil {
		return domain.Category{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.Create(ctx, c)
}

func (s *CategoriesService) Update(
	ctx context.Context, c domain.Category,
) (*domain.Category, error) {
	const op = "CategoriesService.Update"

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.Get(ctx, c.ID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (s *CategoriesService) Delete(
	ctx context.Context, id int64,
) (bool, error) {
	const op = "CategoriesService.Delete"

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
