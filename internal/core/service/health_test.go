package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/paintmart/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func TestHealthProbe(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		prober := new(MockProber)
		prober.On("Probe", mock.Anything).Return("", nil).Once()

		s := service.NewHealth(prober)
		st := s.Probe(t.Context())
		assert.True(t, st.OK)
		assert.Empty(t, st.Warning)
		assert.Empty(t, st.Error)
	})

	t.Run("DegradedCarriesWarning", func(t *testing.T) {
		prober := new(MockProber)
		prober.On("Probe", mock.Anything).
			Return("catalog readable only through policy bypass", nil).Once()

		s := service.NewHealth(prober)
		st := s.Probe(t.Context())
		assert.True(t, st.OK)
		assert.NotEmpty(t, st.Warning)
	})

	t.Run("UnreachableNeverPanics", func(t *testing.T) {
		prober := new(MockProber)
		prober.On("Probe", mock.Anything).
			Return("", errors.New("dial tcp: connection refused"))

		s := service.NewHealth(prober)
		var st = s.Probe(t.Context())
		assert.False(t, st.OK)
		assert.NotEmpty(t, st.Error)

		// health polling calls it repeatedly
		st = s.Probe(t.Context())
		assert.False(t, st.OK)
	})
}
