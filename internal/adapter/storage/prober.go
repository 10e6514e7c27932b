package storage

import (
	"context"
	"fmt"

	"github.com/paintmart/storefront/internal/core/port"
	"github.com/paintmart/storefront/pkg/rls"
)

var _ port.Prober = (*Prober)(nil)

// Prober issues one minimal catalog read. The primary read goes through
// row-level policies on purpose: a policy failure there is the signal the
// health endpoint exists to surface.
type Prober struct {
	sqldb sqldb
}

func NewProber(sqldb sqldb) Prober {
	return Prober{sqldb}
}

func (p Prober) Probe(ctx context.Context) (string, error) {
	const op = "Prober.Probe"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var n int64
	err := p.sqldb.QueryRowContext(
		ctx, `SELECT count(*) FROM categories;`,
	).Scan(&n)
	if err == nil {
		return "", nil
	}
	if !rls.IsPolicy(err) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Degraded path: the guarded read was rejected by a policy, retry
	// through the bypass function and report the policy signal as a
	// warning if the backend itself is reachable.
	primaryErr := err
	err = p.sqldb.QueryRowContext(
		ctx, `SELECT count(*) FROM catalog_categories();`,
	).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, primaryErr)
	}

	warning := "catalog readable only through policy bypass"
	if rls.IsRecursion(primaryErr) {
		warning = "row-level policy recursion detected; sign out and retry"
	}
	return warning, nil
}
