package httphandler

import (
	"encoding/json"
	"testing"

	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumerics(t *testing.T) {
	t.Run("StringNumbers", func(t *testing.T) {
		var p Product
		data := []byte(`{"name": "ClearCoat", "price": "17.40", "stock": "3"}`)
		require.NoError(t, json.Unmarshal(data, &p))
		assert.InDelta(t, 17.40, float64(p.Price), 1e-9)
		assert.EqualValues(t, 3, p.Stock)
	})

	t.Run("PlainNumbers", func(t *testing.T) {
		var p Product
		data := []byte(`{"name": "ClearCoat", "price": 17.4, "stock": 3}`)
		require.NoError(t, json.Unmarshal(data, &p))
		assert.InDelta(t, 17.40, float64(p.Price), 1e-9)
		assert.EqualValues(t, 3, p.Stock)
	})

	t.Run("EmptyStringIsZero", func(t *testing.T) {
		var p Product
		data := []byte(`{"name": "ClearCoat", "price": "", "stock": null}`)
		require.NoError(t, json.Unmarshal(data, &p))
		assert.Zero(t, float64(p.Price))
		assert.Zero(t, int(p.Stock))
	})

	t.Run("GarbageRejected", func(t *testing.T) {
		var p Product
		data := []byte(`{"price": "lots"}`)
		assert.Error(t, json.Unmarshal(data, &p))
	})
}

func TestBannerWireMapping(t *testing.T) {
	t.Run("VideoWithoutURLServesImage", func(t *testing.T) {
		b := bannerFromDomain(domain.Banner{
			Title:     "Summer colors",
			Image:     "/img/still.jpg",
			MediaType: domain.MediaVideo,
		})
		assert.Equal(t, "/img/still.jpg", b.MediaSrc)
	})

	t.Run("EmptyMediaTypeDefaultsToImage", func(t *testing.T) {
		b := Banner{Title: "Summer colors"}
		assert.Equal(t, domain.MediaImage, b.toDomain().MediaType)
	})
}
