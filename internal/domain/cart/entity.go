// internal/domain/cart/entity.go
package cart

// FlatShippingRate is the flat shipping charge applied to any non-empty cart
const FlatShippingRate = 150.00

// Line represents one product entry in the cart with its quantity
type Line struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Totals represents derived cart totals, never stored independently
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// calculateTotals derives totals from a set of cart lines
func calculateTotals(lines []Line) Totals {
	var totals Totals

	for _, line := range lines {
		totals.Subtotal += line.UnitPrice * float64(line.Quantity)
	}

	if totals.Subtotal > 0 {
		totals.Shipping = FlatShippingRate
	}
	totals.Total = totals.Subtotal + totals.Shipping

	return totals
}
