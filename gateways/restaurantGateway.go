package gateways

import (
	"context"
	"fmt"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&restaurants).
		Get("/restaurants")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) Restaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&restaurant).
		Get(fmt.Sprintf("/restaurants/%d", id))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) Menu(ctx context.Context, restaurantID int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&items).
		Get(fmt.Sprintf("/menus/%d", restaurantID))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) MenuItem(ctx context.Context, menuItemID int64) (*models.MenuItem, error) {
	var item models.MenuItem
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&item).
		Get(fmt.Sprintf("/menus/item/%d", menuItemID))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &item, nil
}
