// internal/infrastructure/api/admin.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/product"
	"github.com/your-org/storefront-client/internal/pkg/session"
)

// Admin endpoints back the dashboard. Access control is server-side; the
// client only attaches the bearer token like any other call.

// DashboardStats represents the admin dashboard summary numbers
type DashboardStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalProducts int     `json:"total_products"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int     `json:"pending_orders"`
}

// AdminStats fetches dashboard statistics
func (c *Client) AdminStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminListOrders fetches all orders across users
func (c *Client) AdminListOrders(ctx context.Context) ([]order.Receipt, error) {
	var result struct {
		Orders []order.Receipt `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Orders, nil
}

// AdminUpdateOrderStatus sets an order's status
func (c *Client) AdminUpdateOrderStatus(ctx context.Context, id uint, status order.OrderStatus) (*order.Receipt, error) {
	payload := map[string]string{"status": string(status)}
	var resp struct {
		Message string         `json:"message"`
		Order   *order.Receipt `json:"order"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", id), nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// AdminDeleteOrder deletes an order
func (c *Client) AdminDeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/orders/%d", id), nil, nil, nil)
}

// AdminCreateProduct creates a catalog product
func (c *Client) AdminCreateProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	var resp struct {
		Message string           `json:"message"`
		Product *product.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/products", nil, p, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// AdminUpdateProduct updates a catalog product
func (c *Client) AdminUpdateProduct(ctx context.Context, id uint, fields map[string]interface{}) (*product.Product, error) {
	var resp struct {
		Message string           `json:"message"`
		Product *product.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/products/%d", id), nil, fields, &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// AdminDeleteProduct deletes a catalog product
func (c *Client) AdminDeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/products/%d", id), nil, nil, nil)
}

// AdminListUsers fetches all user accounts
func (c *Client) AdminListUsers(ctx context.Context) ([]session.User, error) {
	var result struct {
		Users []session.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Users, nil
}
