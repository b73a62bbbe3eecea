// internal/infrastructure/api/orders.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront-client/internal/domain/order"
)

// createOrderResponse wraps the confirmed order returned by POST /api/orders
type createOrderResponse struct {
	Message string         `json:"message"`
	Order   *order.Receipt `json:"order"`
}

// OrderList represents a paginated order listing response
type OrderList struct {
	Orders      []order.Receipt `json:"orders"`
	Total       int             `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}

// CreateOrder submits an order-creation request and returns the receipt
func (c *Client) CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Receipt, error) {
	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("order response missing order")
	}
	return resp.Order, nil
}

// ListOrders fetches the current user's orders
func (c *Client) ListOrders(ctx context.Context, page, perPage int) (*OrderList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}

	var result OrderList
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder fetches one of the current user's orders by id
func (c *Client) GetOrder(ctx context.Context, id uint) (*order.Receipt, error) {
	var result order.Receipt
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelOrder cancels a pending order
func (c *Client) CancelOrder(ctx context.Context, id uint) (*order.Receipt, error) {
	var resp struct {
		Message string         `json:"message"`
		Order   *order.Receipt `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}
