package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paintmart/storefront/internal/adapter/httphandler"
	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductsService struct {
	mock.Mock
}

func (m *MockProductsService) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProductsService) Get(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsService) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*domain.Product)
	return v, args.Error(1)
}

func (m *MockProductsService) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUnitsSold struct {
	mock.Mock
}

func (m *MockUnitsSold) UnitsSold(productID int64) (int64, error) {
	args := m.Called(productID)
	return args.Get(0).(int64), args.Error(1)
}

func newProductsMux(s *MockProductsService, v *MockUnitsSold) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, s, v)
	return mux
}

func TestProductsEndpoints(t *testing.T) {
	t.Run("ListOK", func(t *testing.T) {
		s := new(MockProductsService)
		s.On("List", mock.Anything).Return([]domain.Product{
			{ID: 1, Name: "Velvet Matte", Price: 38.90},
		}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		newProductsMux(s, nil).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Velvet Matte", got[0]["name"])
	})

	t.Run("PolicyErrorMapsToForbidden", func(t *testing.T) {
		s := new(MockProductsService)
		s.On("Delete", mock.Anything, int64(7)).
			Return(false, domain.NewPolicy(
				"delete", errors.New("permission denied for table products"),
			)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/products/7", nil)
		newProductsMux(s, nil).ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		var envelope struct {
			Error struct {
				Kind       string `json:"kind"`
				Message    string `json:"message"`
				Diagnostic string `json:"diagnostic"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "policy", envelope.Error.Kind)
		assert.NotEmpty(t, envelope.Error.Message)
		assert.NotContains(t, envelope.Error.Message, "permission denied",
			"raw backend text belongs in diagnostic only")
		assert.Contains(t, envelope.Error.Diagnostic, "permission denied")
	})

	t.Run("ValidationMessageIsClassified", func(t *testing.T) {
		s := new(MockProductsService)
		s.On("Create", mock.Anything, mock.Anything).
			Return(domain.Product{}, domain.NewValidation(
				"price must be positive",
			)).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodPost, "/v1/products",
			strings.NewReader(`{"name": "Free Paint", "price": "0"}`),
		)
		newProductsMux(s, nil).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var envelope struct {
			Error struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "validation", envelope.Error.Kind)
		assert.Equal(t, "price must be positive", envelope.Error.Message)
	})

	t.Run("BadIDRejected", func(t *testing.T) {
		s := new(MockProductsService)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil)
		newProductsMux(s, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("UpdateAbsentIsNotFound", func(t *testing.T) {
		s := new(MockProductsService)
		s.On("Update", mock.Anything, mock.Anything).Return(nil, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodPut, "/v1/products/404",
			strings.NewReader(`{"name": "Gone", "price": "10", "stock": 1}`),
		)
		newProductsMux(s, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("StatsFromView", func(t *testing.T) {
		s := new(MockProductsService)
		v := new(MockUnitsSold)
		v.On("UnitsSold", int64(1)).Return(int64(17), nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products/1/stats", nil)
		newProductsMux(s, v).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			ProductID int64 `json:"product_id"`
			UnitsSold int64 `json:"units_sold"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.EqualValues(t, 1, got.ProductID)
		assert.EqualValues(t, 17, got.UnitsSold)
	})
}

func TestAllowJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("RejectsNonJSONBody", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodPost, "/v1/products", strings.NewReader("name=paint"),
		)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		httphandler.AllowJSON(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("PassesEmptyBody", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		httphandler.AllowJSON(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
