package service

import (
	"context"
	"fmt"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.ProductsService = (*ProductsService)(nil)

type ProductsService struct {
	repo     port.ProductsRepository
	fallback port.CatalogFallback
}

func NewProducts(
	repo port.ProductsRepository, fallback port.CatalogFallback,
) *ProductsService {
	return &ProductsService{repo: repo, fallback: fallback}
}

func (s *ProductsService) List(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsService.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[[]domain.Product]{
		{name: "primary", run: s.repo.List},
		{name: "bypass", when: onPolicy, run: s.repo.ListBypass},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) ([]domain.Product, error) {
				return s.fallback.Products(), nil
			}},
	})
}

func (s *ProductsService) Get(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "ProductsService.Get"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return runReadChain(ctx, op, []readStep[domain.Product]{
		{name: "primary", run: func(ctx context.Context) (domain.Product, error) {
			return s.repo.Get(ctx, id)
		}},
		{name: "bypass", when: onPolicy,
			run: func(ctx context.Context) (domain.Product, error) {
				return s.repo.GetBypass(ctx, id)
			}},
		{name: "seed", when: onAnyFailure,
			run: func(context.Context) (domain.Product, error) {
				if p, ok := s.fallback.Product(id); ok {
					return p, nil
				}
				return domain.Product{}, domain.NewNotFound("read")
			}},
	})
}

func (s *ProductsService) Create(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsService.Create"

	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.repo.Create(ctx, p)
}

// Update returns nil when the product does not exist. Writes never fall
// back: a policy failure surfaces to the caller.
func (s *ProductsService) Update(
	ctx context.Context, p domain.Product,
) (*domain.Product, error) {
	const op = "ProductsService.Update"

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.Get(ctx, p.ID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// Delete reports false for an already-absent product instead of failing.
func (s *ProductsService) Delete(
	ctx context.Context, id int64,
) (bool, error) {
	const op = "ProductsService.Delete"

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
