// internal/infrastructure/api/products.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront-client/internal/domain/product"
)

// Category represents a product category as served by the backend
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListProducts fetches products with optional category/search/featured
// filters and pagination
func (c *Client) ListProducts(ctx context.Context, q product.ListQuery) (*product.ListResult, error) {
	query := url.Values{}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Featured {
		query.Set("featured", "true")
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var result product.ListResult
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct fetches one product by id
func (c *Client) GetProduct(ctx context.Context, id uint) (*product.Product, error) {
	var result product.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCategories fetches all active product categories
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var result struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}
