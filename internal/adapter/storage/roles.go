package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
	"github.com/paintmart/storefront/pkg/rls"
)

var _ port.RolesRepository = (*RolesRepository)(nil)

type RolesRepository struct {
	sqldb sqldb
}

func NewRolesRepository(sqldb sqldb) RolesRepository {
	return RolesRepository{sqldb}
}

// adminCheckFns is the ordered list of equivalent admin-check functions.
// The order is load-bearing, the names are not: each is a policy-bypass
// variant of the same question and the first one that answers wins.
var adminCheckFns = []string{
	"is_admin",
	"check_user_admin",
}

func (r RolesRepository) Grant(
	ctx context.Context, ur domain.UserRole,
) error {
	const op = "RolesRepository.Grant"

	if err := ctx.Err(); err != nil {
		return classify("create", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING;`

	if _, err := r.sqldb.ExecContext(ctx, query, ur.UserID, ur.Role); err != nil {
		return classify("create", fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

func (r RolesRepository) Revoke(
	ctx context.Context, ur domain.UserRole,
) error {
	const op = "RolesRepository.Revoke"

	if err := ctx.Err(); err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}

	query := `DELETE FROM user_roles WHERE user_id = $1 AND role = $2;`
	res, err := r.sqldb.ExecContext(ctx, query, ur.UserID, ur.Role)
	if err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("delete")
	}
	return nil
}

func (r RolesRepository) ListForUser(
	ctx context.Context, userID string,
) ([]domain.UserRole, error) {
	const op = "RolesRepository.ListForUser"

	if err := ctx.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT user_id, role FROM user_roles WHERE user_id = $1;`
	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	var urs []domain.UserRole
	for rows.Next() {
		var ur domain.UserRole
		if err := rows.Scan(&ur.UserID, &ur.Role); err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		urs = append(urs, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return urs, nil
}

// CheckAdmin walks the admin-check chain: each bypass function in order,
// then a direct user_roles select as the last resort. A self-referential
// policy on user_roles makes the direct select fail with a recursion
// error, which is exactly what the bypass functions exist to dodge.
func (r RolesRepository) CheckAdmin(
	ctx context.Context, userID string,
) (bool, error) {
	const op = "RolesRepository.CheckAdmin"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return false, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	var lastErr error
	for _, fn := range adminCheckFns {
		query := fmt.Sprintf(`SELECT %s($1);`, fn)
		var isAdmin bool
		err := r.sqldb.QueryRowContext(ctx, query, userID).Scan(&isAdmin)
		if err == nil {
			return isAdmin, nil
		}
		lastErr = err
		log.Warn("admin check fell through", "fn", fn, "err", err)
	}

	directQuery := `
		SELECT EXISTS (
			SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2
		);`
	var isAdmin bool
	err := r.sqldb.QueryRowContext(
		ctx, directQuery, userID, domain.RoleAdmin,
	).Scan(&isAdmin)
	if err == nil {
		return isAdmin, nil
	}

	if rls.IsRecursion(err) {
		log.Error("user_roles policy is self-referential", "err", err)
	}
	if lastErr != nil {
		err = fmt.Errorf("%w (bypass: %w)", err, lastErr)
	}
	return false, classify("read", fmt.Errorf("%s: %w", op, err))
}
