// Package receipt renders a printable text receipt for a recorded sale.
package receipt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/paintmart/storefront/internal/core/domain"
)

const receiptText = `PAINTMART STOREFRONT
====================
Sale #{{.ID}}
Date: {{.Date}}
Customer: {{.CustomerName}}
--------------------
{{range .Items -}}
{{.ProductName}}
  {{.Quantity}} x {{printf "%.2f" .UnitPrice}} = {{printf "%.2f" .TotalPrice}} {{$.Currency}}
{{end -}}
--------------------
TOTAL: {{printf "%.2f" .TotalAmount}} {{.Currency}}
Status: {{.Status}}
`

type receiptData struct {
	ID           int64
	Date         string
	CustomerName string
	Items        []domain.SaleItem
	TotalAmount  float64
	Currency     string
	Status       string
}

type Printer struct {
	tmpl *template.Template
}

func NewPrinter() Printer {
	tmpl := template.Must(template.New("receipt").Parse(receiptText))
	return Printer{tmpl}
}

func (p Printer) Render(s domain.Sale) (string, error) {
	const op = "Printer.Render"

	customerName := s.Customer.Name
	if customerName == "" {
		customerName = "walk-in"
	}

	data := receiptData{
		ID:           s.ID,
		Date:         s.CreatedAt.Format("2006-01-02 15:04"),
		CustomerName: customerName,
		Items:        s.Items,
		TotalAmount:  s.TotalAmount,
		Currency:     s.Currency,
		Status:       s.Status,
	}

	var b strings.Builder
	if err := p.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return b.String(), nil
}
