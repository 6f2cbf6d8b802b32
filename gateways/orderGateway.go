package gateways

import (
	"context"
	"fmt"
	"strings"

	"github.com/bprathamesh20/food-delivery/models"
)

// CreateOrder places the checkout payload with the order service. The
// delivery address is validated here, before anything goes on the wire.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, &ValidationError{Field: "deliveryAddress", Reason: "delivery address is required"}
	}
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}
	var order models.Order
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		Post("/orders")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&order).
		Get(fmt.Sprintf("/orders/%d", id))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) OrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	var orders []models.Order
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&orders).
		Get(fmt.Sprintf("/orders/customer/%d", customerID))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(map[string]models.OrderStatus{"status": status}).
		Put(fmt.Sprintf("/orders/%d/status", id))
	return c.coerce(ScopeCustomer, resp, err)
}

func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/orders/%d", id))
	return c.coerce(ScopeCustomer, resp, err)
}
