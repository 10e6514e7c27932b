package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.SalesRepository = (*SalesRepository)(nil)

type SalesRepository struct {
	sqldb sqldb
}

func NewSalesRepository(sqldb sqldb) SalesRepository {
	return SalesRepository{sqldb}
}

const saleColumns = `
	id, customer_name, customer_phone, customer_email,
	total_amount::text, currency, status, created_at `

const saleItemColumns = `
	id, sale_id, product_id, product_name,
	quantity, unit_price::text, total_price::text `

// Create inserts the sale header and its items in one transaction. A
// header without items must never be observable, so any item failure
// rolls the whole sale back.
func (r SalesRepository) Create(
	ctx context.Context, s domain.Sale,
) (created domain.Sale, createErr error) {
	const op = "SalesRepository.Create"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Sale{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return domain.Sale{}, classify(
			"create", fmt.Errorf("%s: failed to begin tx: %w", op, err),
		)
	}

	defer func() {
		if createErr == nil {
			if err := tx.Commit(); err != nil {
				created = domain.Sale{}
				createErr = classify(
					"create", fmt.Errorf("%s: failed to commit: %w", op, err),
				)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	headerQuery := `
		INSERT INTO sales (
			customer_name, customer_phone, customer_email,
			total_amount, currency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;`

	err = tx.QueryRowContext(ctx, headerQuery,
		s.Customer.Name, s.Customer.Phone, s.Customer.Email,
		s.TotalAmount, s.Currency, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return domain.Sale{}, classify("create", fmt.Errorf("%s: %w", op, err))
	}

	itemQuery := `
		INSERT INTO sale_items (
			sale_id, product_id, product_name,
			quantity, unit_price, total_price
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`

	for i := range s.Items {
		item := &s.Items[i]
		item.SaleID = s.ID
		err := tx.QueryRowContext(ctx, itemQuery,
			item.SaleID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return domain.Sale{}, classify("create", fmt.Errorf("%s: %w", op, err))
		}
	}

	return s, nil
}

func (r SalesRepository) List(ctx context.Context) ([]domain.Sale, error) {
	const op = "SalesRepository.List"

	if err := ctx.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + saleColumns + `FROM sales ORDER BY created_at DESC;`
	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	defer rows.Close()

	var ss []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		ss = append(ss, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	for i := range ss {
		items, err := r.listItems(ctx, ss[i].ID)
		if err != nil {
			return nil, classify("read", fmt.Errorf("%s: %w", op, err))
		}
		ss[i].Items = items
	}
	return ss, nil
}

func (r SalesRepository) Get(
	ctx context.Context, id int64,
) (domain.Sale, error) {
	const op = "SalesRepository.Get"

	if err := ctx.Err(); err != nil {
		return domain.Sale{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	query := `SELECT` + saleColumns + `FROM sales WHERE id = $1;`
	s, err := scanSale(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Sale{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}

	s.Items, err = r.listItems(ctx, s.ID)
	if err != nil {
		return domain.Sale{}, classify("read", fmt.Errorf("%s: %w", op, err))
	}
	return s, nil
}

// Delete removes the sale header; sale_items rows follow via the cascade
// constraint.
func (r SalesRepository) Delete(ctx context.Context, id int64) error {
	const op = "SalesRepository.Delete"

	if err := ctx.Err(); err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}

	res, err := r.sqldb.ExecContext(
		ctx, `DELETE FROM sales WHERE id = $1;`, id,
	)
	if err != nil {
		return classify("delete", fmt.Errorf("%s: %w", op, err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("delete")
	}
	return nil
}

func (r SalesRepository) listItems(
	ctx context.Context, saleID int64,
) ([]domain.SaleItem, error) {
	query := `SELECT` + saleItemColumns + `
		FROM sale_items WHERE sale_id = $1 ORDER BY id;`

	rows, err := r.sqldb.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.SaleItem{}
	for rows.Next() {
		item, err := scanSaleItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanSale(s scanner) (domain.Sale, error) {
	var (
		v         domain.Sale
		name      sql.NullString
		phone     sql.NullString
		email     sql.NullString
		totalText string
	)
	err := s.Scan(
		&v.ID, &name, &phone, &email,
		&totalText, &v.Currency, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return domain.Sale{}, err
	}
	v.Customer = domain.Customer{
		Name:  name.String,
		Phone: phone.String,
		Email: email.String,
	}
	v.TotalAmount, err = strconv.ParseFloat(totalText, 64)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("parse total_amount: %w", err)
	}
	return v, nil
}

func scanSaleItem(s scanner) (domain.SaleItem, error) {
	var (
		v         domain.SaleItem
		unitText  string
		totalText string
	)
	err := s.Scan(
		&v.ID, &v.SaleID, &v.ProductID, &v.ProductName,
		&v.Quantity, &unitText, &totalText,
	)
	if err != nil {
		return domain.SaleItem{}, err
	}
	v.UnitPrice, err = strconv.ParseFloat(unitText, 64)
	if err != nil {
		return domain.SaleItem{}, fmt.Errorf("parse unit_price: %w", err)
	}
	v.TotalPrice, err = strconv.ParseFloat(totalText, 64)
	if err != nil {
		return domain.SaleItem{}, fmt.Errorf("parse total_price: %w", err)
	}
	return v, nil
}
