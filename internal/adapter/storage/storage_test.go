package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, classify("read", nil))
	})

	t.Run("NoRowsIsNotFound", func(t *testing.T) {
		err := classify("read", sql.ErrNoRows)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("InsufficientPrivilegeIsPolicy", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:    pgerrcode.InsufficientPrivilege,
			Message: "permission denied for table products",
		}
		err := classify("update", pgErr)
		assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
	})

	t.Run("PolicyMarkerIsPolicy", func(t *testing.T) {
		err := classify("read",
			errors.New("infinite recursion detected in policy for relation user_roles"),
		)
		assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
	})

	t.Run("UnknownIsOther", func(t *testing.T) {
		err := classify("read", errors.New("connection reset by peer"))
		assert.Equal(t, domain.KindOther, domain.KindOf(err))
	})
}

// Queries are assembled as `SELECT` + columns + `FROM ...`, so every
// column constant must carry its own surrounding whitespace or the last
// column fuses with the FROM keyword.
func TestAssembledQueryText(t *testing.T) {
	cases := map[string]struct {
		columns string
		from    string
	}{
		"Products":   {productColumns, `FROM products ORDER BY id;`},
		"Categories": {categoryColumns, `FROM categories ORDER BY name;`},
		"Banners":    {bannerColumns, `FROM banners ORDER BY position;`},
		"Sales":      {saleColumns, `FROM sales ORDER BY created_at DESC;`},
		"SaleItems":  {saleItemColumns, `FROM sale_items WHERE sale_id = $1;`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			query := `SELECT` + tc.columns + tc.from
			assert.Regexp(t, `^SELECT\s`, query)
			assert.Regexp(t, `\sFROM\s`, query)
			assert.NotRegexp(t, `\wFROM`, query)
		})
	}
}

type fakeScanner struct {
	vals []any
}

func (f fakeScanner) Scan(dest ...any) error {
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = f.vals[i].(int64)
		case *int:
			*v = f.vals[i].(int)
		case *string:
			*v = f.vals[i].(string)
		case *bool:
			*v = f.vals[i].(bool)
		case *[]byte:
			*v = f.vals[i].([]byte)
		case *sql.NullString:
			s, ok := f.vals[i].(string)
			*v = sql.NullString{String: s, Valid: ok}
		default:
			panic("unexpected dest type")
		}
	}
	return nil
}

func TestScanProduct(t *testing.T) {
	t.Run("ParsesTextPrice", func(t *testing.T) {
		p, err := scanProduct(fakeScanner{vals: []any{
			int64(7), "Eggshell Interior 4L", "smooth finish", "31.50",
			int64(1), 10, "/img/eggshell.jpg", false,
			[]byte(`["White"]`), []byte(`{"finish":"eggshell"}`),
			[]byte(`["/img/a.jpg"]`),
		}})
		require.NoError(t, err)
		assert.InDelta(t, 31.50, p.Price, 1e-9)
		assert.Equal(t, []string{"White"}, p.Colors)
		assert.Equal(t, map[string]string{"finish": "eggshell"}, p.Specs)
	})

	t.Run("NullJSONBecomesEmptyContainers", func(t *testing.T) {
		p, err := scanProduct(fakeScanner{vals: []any{
			int64(7), "Eggshell Interior 4L", nil, "31.50",
			int64(1), 10, nil, false,
			[]byte(nil), []byte(nil), []byte(nil),
		}})
		require.NoError(t, err)
		assert.NotNil(t, p.Colors)
		assert.NotNil(t, p.Specs)
		assert.NotNil(t, p.Gallery)
		assert.Empty(t, p.Colors)
		assert.Empty(t, p.Description)
	})

	t.Run("BadPriceFails", func(t *testing.T) {
		_, err := scanProduct(fakeScanner{vals: []any{
			int64(7), "Eggshell Interior 4L", "d", "not-a-price",
			int64(1), 10, "i", false,
			[]byte(`[]`), []byte(`{}`), []byte(`[]`),
		}})
		require.Error(t, err)
	})
}
