package port

import (
	"context"

	"github.com/paintmart/storefront/internal/core/domain"
)

// Repositories return errors already classified into the domain taxonomy;
// nothing above the storage adapter inspects raw backend messages.

type ProductsRepository interface {
	List(context.Context) ([]domain.Product, error)
	ListBypass(context.Context) ([]domain.Product, error)
	Get(context.Context, int64) (domain.Product, error)
	GetBypass(context.Context, int64) (domain.Product, error)
	Create(context.Context, domain.Product) (domain.Product, error)
	Update(context.Context, domain.Product) (domain.Product, error)
	Delete(context.Context, int64) error
}

type CategoriesRepository interface {
	List(context.Context) ([]domain.Category, error)
	ListBypass(context.Context) ([]domain.Category, error)
	Get(context.Context, int64) (domain.Category, error)
	GetBypass(context.Context, int64) (domain.Category, error)
	Create(context.Context, domain.Category) (domain.Category, error)
	Update(context.Context, domain.Category) (domain.Category, error)
	Delete(context.Context, int64) error
}

type BannersRepository interface {
	List(context.Context) ([]domain.Banner, error)
	ListBypass(context.Context) ([]domain.Banner, error)
	Get(context.Context, int64) (domain.Banner, error)
	GetBypass(context.Context, int64) (domain.Banner, error)
	Create(context.Context, domain.Banner) (domain.Banner, error)
	Update(context.Context, domain.Banner) (domain.Banner, error)
	Delete(context.Context, int64) error
}

type SalesRepository interface {
	Create(context.Context, domain.Sale) (domain.Sale, error)
	List(context.Context) ([]domain.Sale, error)
	Get(context.Context, int64) (domain.Sale, error)
	Delete(context.Context, int64) error
}

type RolesRepository interface {
	Grant(context.Context, domain.UserRole) error
	Revoke(context.Context, domain.UserRole) error
	ListForUser(context.Context, string) ([]domain.UserRole, error)
	CheckAdmin(context.Context, string) (bool, error)
}

// CatalogFallback serves the static seed datasets when live reads are
// exhausted. Implementations must be pure and referentially stable.
type CatalogFallback interface {
	Products() []domain.Product
	Product(int64) (domain.Product, bool)
	Categories() []domain.Category
	Banners() []domain.Banner
}

// Prober issues one minimal read against the backend. A non-empty warning
// means the read succeeded only through the policy-bypass path.
type Prober interface {
	Probe(context.Context) (warning string, err error)
}

type SaleEventsProducer interface {
	ProduceSale(context.Context, domain.Sale) error
}

type UnitsSoldViewer interface {
	UnitsSold(int64) (int64, error)
}

// Presentation-facing service contracts.

type ProductsService interface {
	List(context.Context) ([]domain.Product, error)
	Get(context.Context, int64) (domain.Product, error)
	Create(context.Context, domain.Product) (domain.Product, error)
	Update(context.Context, domain.Product) (*domain.Product, error)
	Delete(context.Context, int64) (bool, error)
}

type CategoriesService interface {
	List(context.Context) ([]domain.Category, error)
	Get(context.Context, int64) (domain.Category, error)
	Create(context.Context, domain.Category) (domain.Category, error)
	Update(context.Context, domain.Category) (*domain.Category, error)
	Delete(context.Context, int64) (bool, error)
}

type BannersService interface {
	List(context.Context) ([]domain.Banner, error)
	Get(context.Context, int64) (domain.Banner, error)
	Create(context.Context, domain.Banner) (domain.Banner, error)
	Update(context.Context, domain.Banner) (*domain.Banner, error)
	Delete(context.Context, int64) (bool, error)
}

type SalesService interface {
	Checkout(
		ctx context.Context,
		customer domain.Customer,
		currency string,
		lines []domain.SaleLine,
	) (domain.Sale, error)
	List(context.Context) ([]domain.Sale, error)
	Get(context.Context, int64) (domain.Sale, error)
	Delete(context.Context, int64) (bool, error)
}

type RolesService interface {
	Grant(context.Context, domain.UserRole) error
	Revoke(context.Context, domain.UserRole) (bool, error)
	ListForUser(context.Context, string) ([]domain.UserRole, error)
	IsAdmin(context.Context, string) (bool, error)
}

type HealthService interface {
	Probe(context.Context) domain.ProbeStatus
}
