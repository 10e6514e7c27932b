package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.CategoriesRepository = (*CategoriesRepository)(nil)

type CategoriesRepository struct {
	sqldb sqldb
}

func NewCategoriesRepository(sqldb sqldb) CategoriesRepository {
	return CategoriesRepository{sqldb}
}

const categoryColumns = ` id, name, description, image `

func (r CategoriesRepository) List(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.List"
	query := `SELECT` + categoryColumns + `FROM categories ORDER BY name;`
	return r.list(ctx, op, query)
}

func (r CategoriesRepository) ListBypass(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.ListBypass"
	query := `SELECT` + categoryColumns + `FROM catalog_categories();`
	return r.list(ctx, op, query)
}

func (r CategoriesRepository) list(
	ctx context.Context, op, query string,
) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return cs, nil
}

func (r CategoriesRepository) Get(
	ctx context.Context, id int64,
) (domain.Category, error) {
	const op = "CategoriesRepository.Get"

	if err := ctx.Err(); err != nil {
		return domain.Category{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + categoryColumns + `FROM categories WHERE id = $1;`
	c, err := scanCategory(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Category{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return c, nil
}

func (r CategoriesRepository) GetBypass(
	ctx context.Context, id int64,
) (domain.Category, error) {
	const op = "CategoriesRepository.GetBypass"

	if err := ctx.Err(); err != nil {
		return domain.Category{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + categoryColumns + `FROM catalog_category($1);`
	c, err := scanCategory(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Category{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return c, nil
}

func (r CategoriesRepository) Create(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	const op = "CategoriesRepository.Create"

	if err := ctx.Err(); err != nil {
		return domain.Category{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		INSERT INTO categories (name, description, image)
		VALUES ($1, $2, $3)
		RETURNING` + categoryColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query, c.Name, c.Description, c.Image)
	created, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}
	return created, nil
}

func (r CategoriesRepository) Update(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	const op = "CategoriesRepository.Update"

	if err := ctx.Err(); err != nil {
		return domain.Category{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		UPDATE categories SET name = $2, description = $3, image = $4
		WHERE id = $1
		RETURNING` + categoryColumns + `;`

	row := r.sqldb.QueryRowContext(
		ctx, query, c.ID, c.Name, c.Description, c.Image,
	)
	updated, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}
	return updated, nil
}

func (r CategoriesRepository) Delete(ctx context.Context, id int64) error {
	const op = "CategoriesRepository.Delete"

	if err := ctx.Err(); err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}

	res, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM categories WHERE id = $1;`, id,
	)
	if err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("delete")
	}
	return nil
}

func scanCategory(s scanner) (domain.Category, error) {
	var (
		c           domain.Category
		description sql.NullString
		image       sql.NullString
	)
	if err := s.Scan(&c.ID, &c.Name, &description, &image); err != nil {
		return domain.Category{}, err
	}
	c.Description = description.String
	c.Image = image.String
	return c, nil
}
