package domain

import "time"

type (
	Customer struct {
		Name  string
		Phone string
		Email string
	}

	// SaleLine is a cart line item as submitted at checkout.
	SaleLine struct {
		ProductID   int64
		ProductName string
		Quantity    int
		UnitPrice   float64
	}

	// SaleItem snapshots the product name at sale time, so later renames
	// never change a recorded sale.
	SaleItem struct {
		ID          int64
		SaleID      int64
		ProductID   int64
		ProductName string
		Quantity    int
		UnitPrice   float64
		TotalPrice  float64
	}

	Sale struct {
		ID          int64
		Customer    Customer
		Items       []SaleItem
		TotalAmount float64
		Currency    string
		Status      string
		CreatedAt   time.Time
	}
)

const (
	SaleStatusCompleted = "completed"
	SaleStatusFailed    = "failed"
)

// NewSale builds a sale from cart lines. Totals are always computed here
// and never trusted from the caller.
func NewSale(c Customer, currency string, lines []SaleLine) (Sale, error) {
	if len(lines) == 0 {
		return Sale{}, NewValidation("sale requires at least one item")
	}

	s := Sale{
		Customer: c,
		Currency: currency,
		Status:   SaleStatusCompleted,
	}

	for _, l := range lines {
		if l.Quantity <= 0 {
			return Sale{}, NewValidation("item quantity must be positive")
		}
		if l.UnitPrice <= 0 {
			return Sale{}, NewValidation("item unit price must be positive")
		}
		item := SaleItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  float64(l.Quantity) * l.UnitPrice,
		}
		s.TotalAmount += item.TotalPrice
		s.Items = append(s.Items, item)
	}

	return s, nil
}
