package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.SalesService = (*SalesService)(nil)

type SalesService struct {
	repo   port.SalesRepository
	events port.SaleEventsProducer
}

func NewSales(
	repo port.SalesRepository, events port.SaleEventsProducer,
) *SalesService {
	return &SalesService{repo: repo, events: events}
}

// Checkout builds a sale from the cart lines and records it atomically.
// Totals are computed here, never taken from the caller. Event produce is
// best-effort: a broker outage must not lose a paid sale.
func (s *SalesService) Checkout(
	ctx context.Context,
	customer domain.Customer,
	currency string,
	lines []domain.SaleLine,
) (domain.Sale, error) {
	const op = "SalesService.Checkout"
	log := slog.With("op", op)

	sale, err := domain.NewSale(customer, currency, lines)
	if err != nil {
		return domain.Sale{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.Create(ctx, sale)
	if err != nil {
		return domain.Sale{}, err
	}

	if s.events != nil {
		if err := s.events.ProduceSale(ctx, created); err != nil {
			log.Error("failed to produce sale event",
				"saleID", created.ID, "err", err)
		}
	}

	log.Info("sale recorded",
		"saleID", created.ID,
		"items", len(created.Items),
		"total", created.TotalAmount,
	)
	return created, nil
}

// Sales are admin data; a fabricated fallback list would be misleading,
// so reads surface their classified error instead of seed data.
func (s *SalesService) List(ctx context.Context) ([]domain.Sale, error) {
	const op = "SalesService.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.List(ctx)
}

func (s *SalesService) Get(
	ctx context.Context, id int64,
) (domain.Sale, error) {
	const op = "SalesService.Get"

	if err := ctx.Err(); err != nil {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.repo.Get(ctx, id)
}

func (s *SalesService) Delete(
	ctx context.Context, id int64,
) (bool, error) {
	const op = "SalesService.Delete"

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
