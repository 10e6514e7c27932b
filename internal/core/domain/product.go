package domain

type (
	Product struct {
		ID          int64
		Name        string
		Description string
		Price       float64
		CategoryID  int64
		Stock       int
		Image       string
		Featured    bool
		Colors      []string
		Specs       map[string]string
		Gallery     []string
	}

	Category struct {
		ID          int64
		Name        string
		Description string
		Image       string
	}
)

// Validate checks the invariants an admin-supplied product must hold
// before any query is issued.
func (p Product) Validate() error {
	if p.Name == "" {
		return NewValidation("name is required")
	}
	if p.Price <= 0 {
		return NewValidation("price must be greater than zero")
	}
	if p.Stock < 0 {
		return NewValidation("stock must not be negative")
	}
	return nil
}

func (c Category) Validate() error {
	if c.Name == "" {
		return NewValidation("name is required")
	}
	return nil
}
