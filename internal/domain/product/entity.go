// internal/domain/product/entity.go
package product

// Product represents a catalog product as served by the Products API
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// ListQuery holds the supported product listing filters
type ListQuery struct {
	Category string
	Search   string
	Featured bool
	Page     int
	PerPage  int
}

// ListResult represents a paginated product listing response
type ListResult struct {
	Products    []Product `json:"products"`
	Total       int       `json:"total"`
	Pages       int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
}
