package domain_test

import (
	"testing"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerMediaSource(t *testing.T) {
	t.Run("VideoWithURL", func(t *testing.T) {
		b := domain.Banner{
			MediaType: domain.MediaVideo,
			Image:     "/img/still.jpg",
			VideoURL:  "/video/clip.mp4",
		}
		assert.Equal(t, "/video/clip.mp4", b.MediaSource())
	})

	t.Run("VideoWithoutURLFallsBackToImage", func(t *testing.T) {
		b := domain.Banner{
			MediaType: domain.MediaVideo,
			Image:     "/img/still.jpg",
		}
		assert.Equal(t, "/img/still.jpg", b.MediaSource())
	})

	t.Run("Image", func(t *testing.T) {
		b := domain.Banner{
			MediaType: domain.MediaImage,
			Image:     "/img/banner.jpg",
		}
		assert.Equal(t, "/img/banner.jpg", b.MediaSource())
	})
}

func TestNewSale(t *testing.T) {
	t.Run("ComputesTotals", func(t *testing.T) {
		s, err := domain.NewSale(domain.Customer{}, "USD", []domain.SaleLine{
			{ProductID: 1, ProductName: "Velvet Matte", Quantity: 2, UnitPrice: 38.90},
			{ProductID: 4, ProductName: "IronGuard", Quantity: 1, UnitPrice: 21.75},
		})
		require.NoError(t, err)
		require.Len(t, s.Items, 2)
		assert.InDelta(t, 2*38.90, s.Items[0].TotalPrice, 1e-9)
		assert.InDelta(t, 21.75, s.Items[1].TotalPrice, 1e-9)
		assert.InDelta(t, 2*38.90+21.75, s.TotalAmount, 1e-9)
	})

	t.Run("EmptyLines", func(t *testing.T) {
		_, err := domain.NewSale(domain.Customer{}, "USD", nil)
		require.Error(t, err)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("NegativePrice", func(t *testing.T) {
		_, err := domain.NewSale(domain.Customer{}, "USD", []domain.SaleLine{
			{ProductID: 1, Quantity: 1, UnitPrice: -5},
		})
		require.Error(t, err)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestProductValidate(t *testing.T) {
	valid := domain.Product{Name: "ClearCoat", Price: 17.40, Stock: 3}
	require.NoError(t, valid.Validate())

	t.Run("ZeroPrice", func(t *testing.T) {
		p := valid
		p.Price = 0
		assert.Error(t, p.Validate())
	})

	t.Run("NegativeStock", func(t *testing.T) {
		p := valid
		p.Stock = -1
		assert.Error(t, p.Validate())
	})
}

func TestErrorKinds(t *testing.T) {
	t.Run("WrappedKindSurvives", func(t *testing.T) {
		err := domain.NewPolicy("update", assert.AnError)
		assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
	})

	t.Run("UnknownIsOther", func(t *testing.T) {
		assert.Equal(t, domain.KindOther, domain.KindOf(assert.AnError))
	})
}
