// Package seed holds the bundled catalog served when every live read path
// is exhausted. The datasets are fixed at process start and safe for
// concurrent readers.
package seed

import (
	"github.com/paintmart/storefront/internal/core/domain"
	"github.com/paintmart/storefront/internal/core/port"
)

var _ port.CatalogFallback = (*Catalog)(nil)

type Catalog struct{}

func NewCatalog() Catalog {
	return Catalog{}
}

func (Catalog) Products() []domain.Product {
	ps := make([]domain.Product, len(products))
	copy(ps, products)
	return ps
}

func (Catalog) Product(id int64) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (Catalog) Categories() []domain.Category {
	cs := make([]domain.Category, len(categories))
	copy(cs, categories)
	return cs
}

func (Catalog) Banners() []domain.Banner {
	bs := make([]domain.Banner, len(banners))
	copy(bs, banners)
	return bs
}

var categories = []domain.Category{
	{
		ID:          1,
		Name:        "Interior Paint",
		Description: "Wall and ceiling paint for living spaces",
		Image:       "/img/categories/interior.jpg",
	},
	{
		ID:          2,
		Name:        "Exterior Paint",
		Description: "Weather-resistant facade and fence paint",
		Image:       "/img/categories/exterior.jpg",
	},
	{
		ID:          3,
		Name:        "Wood & Metal",
		Description: "Enamels, varnishes and primers",
		Image:       "/img/categories/wood-metal.jpg",
	},
	{
		ID:          4,
		Name:        "Tools & Accessories",
		Description: "Brushes, rollers, tapes and trays",
		Image:       "/img/categories/tools.jpg",
	},
}

var products = []domain.Product{
	{
		ID:          1,
		Name:        "Velvet Matte Interior 4L",
		Description: "Washable matte latex for walls and ceilings",
		Price:       38.90,
		CategoryID:  1,
		Stock:       42,
		Image:       "/img/products/velvet-matte.jpg",
		Featured:    true,
		Colors:      []string{"Alpine White", "Linen", "Slate Gray"},
		Specs: map[string]string{
			"coverage": "12 m2/L",
			"finish":   "matte",
			"drying":   "2 h",
		},
		Gallery: []string{
			"/img/products/velvet-matte-1.jpg",
			"/img/products/velvet-matte-2.jpg",
		},
	},
	{
		ID:          2,
		Name:        "Satin Touch Interior 10L",
		Description: "Silky satin finish for high-traffic rooms",
		Price:       82.50,
		CategoryID:  1,
		Stock:       18,
		Image:       "/img/products/satin-touch.jpg",
		Featured:    true,
		Colors:      []string{"Cloud White", "Sand", "Sage Green"},
		Specs: map[string]string{
			"coverage": "11 m2/L",
			"finish":   "satin",
		},
		Gallery: []string{"/img/products/satin-touch-1.jpg"},
	},
	{
		ID:          3,
		Name:        "StormShield Facade 20L",
		Description: "Elastomeric exterior coating, 10-year warranty",
		Price:       149.00,
		CategoryID:  2,
		Stock:       9,
		Image:       "/img/products/stormshield.jpg",
		Featured:    false,
		Colors:      []string{"Terracotta", "Graphite", "Ivory"},
		Specs: map[string]string{
			"coverage": "8 m2/L",
			"finish":   "matte",
			"uv":       "high resistance",
		},
		Gallery: []string{"/img/products/stormshield-1.jpg"},
	},
	{
		ID:          4,
		Name:        "IronGuard Enamel 1L",
		Description: "Anti-rust gloss enamel for metal surfaces",
		Price:       21.75,
		CategoryID:  3,
		Stock:       65,
		Image:       "/img/products/ironguard.jpg",
		Featured:    false,
		Colors:      []string{"Black", "Forest Green", "Signal Red"},
		Specs: map[string]string{
			"finish": "gloss",
			"base":   "alkyd",
		},
		Gallery: []string{"/img/products/ironguard-1.jpg"},
	},
	{
		ID:          5,
		Name:        "ClearCoat Varnish 750ml",
		Description: "Transparent polyurethane varnish for wood",
		Price:       17.40,
		CategoryID:  3,
		Stock:       38,
		Image:       "/img/products/clearcoat.jpg",
		Featured:    false,
		Colors:      []string{"Clear", "Walnut Tint", "Oak Tint"},
		Specs: map[string]string{
			"finish": "semi-gloss",
			"coats":  "2-3",
		},
		Gallery: []string{"/img/products/clearcoat-1.jpg"},
	},
	{
		ID:          6,
		Name:        "Pro Roller Kit 23cm",
		Description: "Microfiber roller with tray and extension pole",
		Price:       12.90,
		CategoryID:  4,
		Stock:       120,
		Image:       "/img/products/roller-kit.jpg",
		Featured:    true,
		Colors:      []string{},
		Specs: map[string]string{
			"pile": "12 mm",
		},
		Gallery: []string{"/img/products/roller-kit-1.jpg"},
	},
}

var banners = []domain.Banner{
	{
		ID:        1,
		Title:     "Spring repaint sale",
		Subtitle:  "Up to 25% off interior lines",
		Image:     "/img/banners/spring.jpg",
		MediaType: domain.MediaImage,
		CTAText:   "Shop interior",
		CTALink:   "/catalog/interior",
		Position:  1,
		Height:    "480px",
		TextColor: "#ffffff",
	},
	{
		ID:        2,
		Title:     "How to prep a facade",
		Image:     "/img/banners/facade-still.jpg",
		VideoURL:  "/video/banners/facade-prep.mp4",
		MediaType: domain.MediaVideo,
		CTAText:   "Watch guide",
		CTALink:   "/guides/facade-prep",
		Position:  2,
	},
}
