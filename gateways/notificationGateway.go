package gateways

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) Notifications(ctx context.Context, userID int64, userType string) ([]models.Notification, error) {
	var notifications []models.Notification
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetQueryParam("userType", userType).
		SetResult(&notifications).
		Get("/notifications")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	resp, err := c.api.R().
		SetContext(ctx).
		Put(fmt.Sprintf("/notifications/%d/read", id))
	return c.coerce(ScopeCustomer, resp, err)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int64, userType string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetQueryParam("userType", userType).
		Put("/notifications/read-all")
	return c.coerce(ScopeCustomer, resp, err)
}
