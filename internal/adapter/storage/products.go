package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.ProductsRepository = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

// price::text keeps the numeric column exact on the wire; it is parsed
// back to a number before leaving the repository.
const productColumns = `
	id, name, description, price::text, category_id,
	stock, image, featured, colors, specs, gallery `

func (r ProductsRepository) List(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.List"
	query := `SELECT` + productColumns + `FROM products ORDER BY id;`
	return r.list(ctx, op, query)
}

// ListBypass reads through the security-definer catalog function, the
// alternate path when row-level policies reject the direct query.
func (r ProductsRepository) ListBypass(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ListBypass"
	query := `SELECT` + productColumns + `FROM catalog_products();`
	return r.list(ctx, op, query)
}

func (r ProductsRepository) list(
	ctx context.Context, op, query string,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return ps, nil
}

func (r ProductsRepository) Get(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "ProductsRepository.Get"
	query := `SELECT` + productColumns + `FROM products WHERE id = $1;`
	return r.get(ctx, op, query, id)
}

func (r ProductsRepository) GetBypass(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "ProductsRepository.GetBypass"
	query := `SELECT` + productColumns + `FROM catalog_product($1);`
	return r.get(ctx, op, query, id)
}

func (r ProductsRepository) get(
	ctx context.Context, op, query string, id int64,
) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	p, err := scanProduct(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Product{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return p, nil
}

func (r ProductsRepository) Create(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.Create"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		INSERT INTO products (
			name, description, price, category_id,
			stock, image, featured, colors, specs, gallery
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + productColumns + `;`

	colors, specs, gallery := marshalProductJSON(p)
	row := r.sqldb.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.CategoryID,
		p.Stock, p.Image, p.Featured, colors, specs, gallery,
	)
	created, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}
	return created, nil
}

func (r ProductsRepository) Update(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "ProductsRepository.Update"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}

	query := `
		UPDATE products SET
			name = $2, description = $3, price = $4, category_id = $5,
			stock = $6, image = $7, featured = $8,
			colors = $9, specs = $10, gallery = $11
		WHERE id = $1
		RETURNING` + productColumns + `;`

	colors, specs, gallery := marshalProductJSON(p)
	row := r.sqldb.QueryRowContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.CategoryID,
		p.Stock, p.Image, p.Featured, colors, specs, gallery,
	)
	updated, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, classify("update", fmt.Errorf("%s: %w", op, err))
	}
	return updated, nil
}

func (r ProductsRepository) Delete(ctx context.Context, id int64) error {
	const op = "ProductsRepository.Delete"

	if err := ctx.Err(); err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}

	res, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM products WHERE id = $1;`, id,
	)
	if err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("delete")
	}
	return nil
}

func scanProduct(s scanner) (domain.Product, error) {
	var (
		p           domain.Product
		description sql.NullString
		image       sql.NullString
		priceText   string
		colorsB     []byte
		specsB      []byte
		galleryB    []byte
	)

	err := s.Scan(
		&p.ID, &p.Name, &description, &priceText, &p.CategoryID,
		&p.Stock, &image, &p.Featured, &colorsB, &specsB, &galleryB,
	)
	if err != nil {
		return domain.Product{}, err
	}

	p.Description = description.String
	p.Image = image.String

	p.Price, err = strconv.ParseFloat(priceText, 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parse price: %w", err)
	}

	p.Colors = []string{}
	if len(colorsB) > 0 {
		if err := json.Unmarshal(colorsB, &p.Colors); err != nil {
			return domain.Product{}, fmt.Errorf("parse colors: %w", err)
		}
	}

	p.Specs = map[string]string{}
	if len(specsB) > 0 {
		if err := json.Unmarshal(specsB, &p.Specs); err != nil {
			return domain.Product{}, fmt.Errorf("parse specs: %w", err)
		}
	}

	p.Gallery = []string{}
	if len(galleryB) > 0 {
		if err := json.Unmarshal(galleryB, &p.Gallery); err != nil {
			return domain.Product{}, fmt.Errorf("parse gallery: %w", err)
		}
	}

	return p, nil
}

func marshalProductJSON(p domain.Product) (colors, specs, gallery []byte) {
	colors, _ = json.Marshal(p.Colors)
	specs, _ = json.Marshal(p.Specs)
	gallery, _ = json.Marshal(p.Gallery)
	return
}
