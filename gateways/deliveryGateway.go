package gateways

import (
	"context"
	"fmt"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) Delivery(ctx context.Context, id int64) (*models.Delivery, error) {
	var delivery models.Delivery
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetResult(&delivery).
		Get(fmt.Sprintf("/deliveries/%d", id))
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// DeliveryByOrder looks up the delivery assigned to an order. Until an agent
// is assigned the server has nothing, which surfaces as ErrNotFound.
func (c *Client) DeliveryByOrder(ctx context.Context, orderID int64) (*models.Delivery, error) {
	var delivery models.Delivery
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetResult(&delivery).
		Get(fmt.Sprintf("/deliveries/order/%d", orderID))
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (c *Client) DeliveriesByAgent(ctx context.Context, agentID int64) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetResult(&deliveries).
		Get(fmt.Sprintf("/deliveries/agent/%d", agentID))
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// Tracking returns the delivery's location history, oldest first.
func (c *Client) Tracking(ctx context.Context, deliveryID int64) ([]models.TrackingSample, error) {
	var samples []models.TrackingSample
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetResult(&samples).
		Get(fmt.Sprintf("/deliveries/%d/tracking", deliveryID))
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return nil, err
	}
	return samples, nil
}

func (c *Client) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, status models.DeliveryStatus, remarks string) error {
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetBody(models.UpdateDeliveryStatusRequest{Status: status, Remarks: remarks}).
		Put(fmt.Sprintf("/deliveries/%d/status", deliveryID))
	return c.coerce(ScopeAgent, resp, err)
}

func (c *Client) UpdateDeliveryLocation(ctx context.Context, deliveryID int64, latitude, longitude float64, remarks string) error {
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetBody(models.UpdateLocationRequest{Latitude: latitude, Longitude: longitude, Remarks: remarks}).
		Post(fmt.Sprintf("/deliveries/%d/location", deliveryID))
	return c.coerce(ScopeAgent, resp, err)
}
