package seed_test

import (
	"testing"

	"github.com/paintmart/storefront/internal/adapter/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := seed.NewCatalog()

	t.Run("NonEmpty", func(t *testing.T) {
		assert.NotEmpty(t, c.Products())
		assert.NotEmpty(t, c.Categories())
		assert.NotEmpty(t, c.Banners())
	})

	t.Run("StableAcrossCalls", func(t *testing.T) {
		assert.Equal(t, c.Products(), c.Products())
		assert.Equal(t, c.Categories(), c.Categories())
		assert.Equal(t, c.Banners(), c.Banners())
	})

	t.Run("CallersCannotMutate", func(t *testing.T) {
		ps := c.Products()
		ps[0].Name = "scribbled"
		assert.NotEqual(t, ps[0].Name, c.Products()[0].Name)
	})

	t.Run("ProductLookup", func(t *testing.T) {
		p, ok := c.Product(1)
		require.True(t, ok)
		assert.EqualValues(t, 1, p.ID)
		assert.Positive(t, p.Price)

		_, ok = c.Product(999)
		assert.False(t, ok)
	})

	t.Run("ProductInvariants", func(t *testing.T) {
		for _, p := range c.Products() {
			require.NoError(t, p.Validate(), p.Name)
		}
	})

	t.Run("VideoBannerHasPlayableSource", func(t *testing.T) {
		for _, b := range c.Banners() {
			assert.NotEmpty(t, b.MediaSource(), b.Title)
		}
	})
}
