// internal/domain/order/entity.go
package order

// OrderStatus represents the order status as reported by the Orders API
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ShippingAddress is the delivery address submitted with an order
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// MissingField returns the name of the first empty required field,
// or "" when the address is complete
func (a ShippingAddress) MissingField() string {
	switch {
	case a.Street == "":
		return "street"
	case a.City == "":
		return "city"
	case a.State == "":
		return "state"
	case a.ZipCode == "":
		return "zip_code"
	case a.Country == "":
		return "country"
	}
	return ""
}

// RequestItem is one cart line reduced to what the server needs.
// The server reprices from its catalog, so no price is sent.
type RequestItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest is the order-creation payload for POST /api/orders
type CreateOrderRequest struct {
	Items           []RequestItem   `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	ShippingCost    float64         `json:"shipping_cost"`
}

// ReceiptItem is one line of a confirmed order
type ReceiptItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Receipt is the server-confirmed record of a placed order
type Receipt struct {
	ID              uint            `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Status          OrderStatus     `json:"status"`
	Subtotal        float64         `json:"subtotal"`
	ShippingCost    float64         `json:"shipping_cost"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Items           []ReceiptItem   `json:"items"`
	CreatedAt       string          `json:"created_at,omitempty"`
}
