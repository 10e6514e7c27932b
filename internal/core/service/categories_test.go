package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paintmart/storefront/internal/adapter/seed"
	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCategoriesRepo struct {
	mock.Mock
}

func (m *MockCategoriesRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockCategoriesRepo) ListBypass(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockCategoriesRepo) Get(ctx context.Context, id int64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesRepo) GetBypass(ctx context.Context, id int64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesRepo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesRepo) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoriesRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func categoryPolicyErr(operation string) *domain.Error {
	return domain.NewPolicy(
		operation, errors.New("permission denied for table categories"),
	)
}

func TestCategoriesGet(t *testing.T) {
	t.Run("Primary", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		want := domain.Category{ID: 1, Name: "Interior Paint"}
		repo.On("Get", mock.Anything, int64(1)).Return(want, nil).Once()

		s := service.NewCategories(repo, seed.NewCatalog())
		got, err := s.Get(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		repo.AssertNotCalled(t, "GetBypass", mock.Anything, mock.Anything)
	})

	t.Run("PolicyFailureUsesBypass", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		want := domain.Category{ID: 1, Name: "Interior Paint"}
		repo.On("Get", mock.Anything, int64(1)).
			Return(domain.Category{}, categoryPolicyErr("read")).Once()
		repo.On("GetBypass", mock.Anything, int64(1)).Return(want, nil).Once()

		s := service.NewCategories(repo, seed.NewCatalog())
		got, err := s.Get(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("SeedLookupAfterBypassFailure", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		repo.On("Get", mock.Anything, int64(1)).
			Return(domain.Category{}, categoryPolicyErr("read"))
		repo.On("GetBypass", mock.Anything, int64(1)).
			Return(domain.Category{}, categoryPolicyErr("read"))

		s := service.NewCategories(repo, seed.NewCatalog())
		c, err := s.Get(t.Context(), 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, c.ID)
	})

	t.Run("TransientExhaustionReachesSeed", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		boom := domain.NewOther("read", errors.New("connection reset"))
		repo.On("Get", mock.Anything, int64(1)).
			Return(domain.Category{}, boom)

		s := service.NewCategories(repo, seed.NewCatalog())
		c, err := s.Get(t.Context(), 1)
		require.NoError(t, err)
		assert.EqualValues(t, 1, c.ID)
		repo.AssertNotCalled(t, "GetBypass", mock.Anything, mock.Anything)
	})

	t.Run("NotFoundStopsChain", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		repo.On("Get", mock.Anything, int64(404)).
			Return(domain.Category{}, domain.NewNotFound("read")).Once()

		s := service.NewCategories(repo, seed.NewCatalog())
		_, err := s.Get(t.Context(), 404)
		require.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
		repo.AssertNotCalled(t, "GetBypass", mock.Anything, mock.Anything)
	})
}

func TestCategoriesList(t *testing.T) {
	t.Run("PolicyFailureUsesBypass", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		want := []domain.Category{{ID: 1, Name: "Interior Paint"}}
		repo.On("List", mock.Anything).
			Return(nil, categoryPolicyErr("read")).Once()
		repo.On("ListBypass", mock.Anything).Return(want, nil).Once()

		s := service.NewCategories(repo, seed.NewCatalog())
		got, err := s.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ExhaustionFallsBackToSeed", func(t *testing.T) {
		repo := new(MockCategoriesRepo)
		repo.On("List", mock.Anything).Return(nil, categoryPolicyErr("read"))
		repo.On("ListBypass", mock.Anything).
			Return(nil, categoryPolicyErr("read"))

		s := service.NewCategories(repo, seed.NewCatalog())
		got, err := s.List(t.Context())
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	})
}
