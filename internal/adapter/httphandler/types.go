package httphandler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/paintmart/storefront/internal/core/domain"
)

// flexFloat accepts both 38.9 and "38.9". Storefront clients send
// numbers as strings after form round-trips.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if string(data) == "" || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if string(data) == "" || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

type (
	Product struct {
		ID          int64             `json:"id"`
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Price       flexFloat         `json:"price"`
		CategoryID  int64             `json:"category_id"`
		Stock       flexInt           `json:"stock"`
		Image       string            `json:"image"`
		Featured    bool              `json:"featured"`
		Colors      []string          `json:"colors"`
		Specs       map[string]string `json:"specs"`
		Gallery     []string          `json:"gallery"`
	}

	Category struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}

	Banner struct {
		ID        int64  `json:"id"`
		Title     string `json:"title"`
		Subtitle  string `json:"subtitle"`
		Image     string `json:"image"`
		VideoURL  string `json:"video_url"`
		MediaType string `json:"media_type"`
		MediaSrc  string `json:"media_src,omitempty"`
		CTAText   string `json:"cta_text"`
		CTALink   string `json:"cta_link"`
		Position  int    `json:"position"`
		Height    string `json:"height"`
		TextColor string `json:"text_color"`
	}

	CustomerInfo struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}

	CartItem struct {
		ProductID   int64     `json:"product_id"`
		ProductName string    `json:"product_name"`
		Quantity    flexInt   `json:"quantity"`
		UnitPrice   flexFloat `json:"unit_price"`
	}

	CheckoutRequest struct {
		Customer CustomerInfo `json:"customer"`
		Currency string       `json:"currency"`
		Items    []CartItem   `json:"items"`
	}

	SaleItem struct {
		ProductID   int64   `json:"product_id"`
		ProductName string  `json:"product_name"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
		TotalPrice  float64 `json:"total_price"`
	}

	Sale struct {
		ID          int64        `json:"id"`
		Customer    CustomerInfo `json:"customer"`
		Items       []SaleItem   `json:"items"`
		TotalAmount float64      `json:"total_amount"`
		Currency    string       `json:"currency"`
		Status      string       `json:"status"`
		CreatedAt   string       `json:"created_at"`
	}

	RoleAssignment struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
)

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.Price),
		CategoryID:  p.CategoryID,
		Stock:       int(p.Stock),
		Image:       p.Image,
		Featured:    p.Featured,
		Colors:      p.Colors,
		Specs:       p.Specs,
		Gallery:     p.Gallery,
	}
}

func productFromDomain(v domain.Product) Product {
	return Product{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       flexFloat(v.Price),
		CategoryID:  v.CategoryID,
		Stock:       flexInt(v.Stock),
		Image:       v.Image,
		Featured:    v.Featured,
		Colors:      v.Colors,
		Specs:       v.Specs,
		Gallery:     v.Gallery,
	}
}

func productsFromDomain(vs []domain.Product) []Product {
	ps := make([]Product, len(vs))
	for i, v := range vs {
		ps[i] = productFromDomain(v)
	}
	return ps
}

func (c Category) toDomain() domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

func categoryFromDomain(v domain.Category) Category {
	return Category{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Image:       v.Image,
	}
}

func categoriesFromDomain(vs []domain.Category) []Category {
	cs := make([]Category, len(vs))
	for i, v := range vs {
		cs[i] = categoryFromDomain(v)
	}
	return cs
}

func (b Banner) toDomain() domain.Banner {
	mt := domain.MediaType(b.MediaType)
	if mt == "" {
		mt = domain.MediaImage
	}
	return domain.Banner{
		ID:        b.ID,
		Title:     b.Title,
		Subtitle:  b.Subtitle,
		Image:     b.Image,
		VideoURL:  b.VideoURL,
		MediaType: mt,
		CTAText:   b.CTAText,
		CTALink:   b.CTALink,
		Position:  b.Position,
		Height:    b.Height,
		TextColor: b.TextColor,
	}
}

func bannerFromDomain(v domain.Banner) Banner {
	return Banner{
		ID:        v.ID,
		Title:     v.Title,
		Subtitle:  v.Subtitle,
		Image:     v.Image,
		VideoURL:  v.VideoURL,
		MediaType: string(v.MediaType),
		MediaSrc:  v.MediaSource(),
		CTAText:   v.CTAText,
		CTALink:   v.CTALink,
		Position:  v.Position,
		Height:    v.Height,
		TextColor: v.TextColor,
	}
}

func bannersFromDomain(vs []domain.Banner) []Banner {
	bs := make([]Banner, len(vs))
	for i, v := range vs {
		bs[i] = bannerFromDomain(v)
	}
	return bs
}

func (r CheckoutRequest) toDomain() (domain.Customer, string, []domain.SaleLine) {
	c := domain.Customer{
		Name:  r.Customer.Name,
		Phone: r.Customer.Phone,
		Email: r.Customer.Email,
	}
	lines := make([]domain.SaleLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = domain.SaleLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    int(item.Quantity),
			UnitPrice:   float64(item.UnitPrice),
		}
	}
	return c, r.Currency, lines
}

func saleFromDomain(v domain.Sale) Sale {
	s := Sale{
		ID: v.ID,
		Customer: CustomerInfo{
			Name:  v.Customer.Name,
			Phone: v.Customer.Phone,
			Email: v.Customer.Email,
		},
		TotalAmount: v.TotalAmount,
		Currency:    v.Currency,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
	s.Items = make([]SaleItem, len(v.Items))
	for i, item := range v.Items {
		s.Items[i] = SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return s
}

func salesFromDomain(vs []domain.Sale) []Sale {
	ss := make([]Sale, len(vs))
	for i, v := range vs {
		ss[i] = saleFromDomain(v)
	}
	return ss
}

var _ json.Unmarshaler = (*flexFloat)(nil)
var _ json.Unmarshaler = (*flexInt)(nil)
