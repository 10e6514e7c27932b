// Package service implements the resource accessors: per-entity
// create/read/update/delete with an explicit, ordered read-fallback chain
// and a strict no-silent-fallback rule for writes.
package service

import (
	"context"
	"log/slog"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/pkg/retry"
)

// readStep is one entry in an ordered read-fallback chain. The zero when
// means the step runs unconditionally; otherwise the step runs only when
// the previous step's error satisfies it.
type readStep[T any] struct {
	name string
	when func(error) bool
	run  func(context.Context) (T, error)
}

func onPolicy(err error) bool {
	return domain.IsKind(err, domain.KindPolicy)
}

func onAnyFailure(err error) bool {
	return !domain.IsKind(err, domain.KindNotFound)
}

func retryTransient(err error) bool {
	return domain.IsKind(err, domain.KindOther)
}

// runReadChain executes the steps in order and returns the first success.
// The first step gets one extra attempt for transient failures; later
// steps are tried once each. A skipped step leaves the previous error in
// place, so the chain's final error is the last real failure.
func runReadChain[T any](
	ctx context.Context, op string, steps []readStep[T],
) (T, error) {
	log := slog.With("op", op)

	var (
		zero T
		err  error
	)

	for i, step := range steps {
		if i > 0 && !step.when(err) {
			continue
		}

		var v T
		if i == 0 {
			cfg := retry.Config{MaxAttempts: 2, ShouldRetry: retryTransient}
			v, err = retry.DoWithResult(ctx, cfg, func() (T, error) {
				return step.run(ctx)
			})
		} else {
			v, err = step.run(ctx)
		}

		if err == nil {
			if i > 0 {
				log.Warn("read degraded to fallback path", "step", step.name)
			}
			return v, nil
		}
		log.Warn("read step failed", "step", step.name, "err", err)
	}

	return zero, err
}
