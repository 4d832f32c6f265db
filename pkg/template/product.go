// pkg/template/product.go
package template

import (
	"github.com/shopspring/decimal"

	"printer-service/pkg/tspl"
)

// ProductData drives the product shelf label layout.
type ProductData struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	WidthMM  float64         `json:"width_mm"`
	HeightMM float64         `json:"height_mm"`
	Copies   int             `json:"copies"`
}

// ProductLabel renders a shelf label: name, price and a Code128 SKU barcode
// on a small die-cut label.
func ProductLabel(data ProductData) []byte {
	width := data.WidthMM
	if width <= 0 {
		width = 57
	}
	height := data.HeightMM
	if height <= 0 {
		height = 32
	}
	currency := data.Currency
	if currency == "" {
		currency = "$"
	}
	copies := data.Copies
	if copies < 1 {
		copies = 1
	}

	e := tspl.NewEncoder().
		Size(width, height).
		Gap(2, 0).
		Speed(4).
		Density(8).
		Direction(1, 0).
		Cls()

	e.Text(16, 16, "3", 0, 1, 1, data.Name)
	if !data.Price.IsZero() {
		e.Text(16, 64, "4", 0, 1, 1, currency+data.Price.StringFixed(2))
	}
	e.Barcode128(16, 120, 64, data.SKU)

	return e.Print(1, copies).Bytes()
}
