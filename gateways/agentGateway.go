package gateways

import (
	"context"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) RegisterAgent(ctx context.Context, req models.AgentRegisterRequest) (models.AgentAuthResponse, error) {
	var auth models.AgentAuthResponse
	resp, err := c.delivery.R().
		SetContext(withAuthCall(ctx)).
		SetBody(req).
		SetResult(&auth).
		Post("/auth/agent/register")
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return models.AgentAuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) AgentLogin(ctx context.Context, req models.LoginRequest) (models.AgentAuthResponse, error) {
	var auth models.AgentAuthResponse
	resp, err := c.delivery.R().
		SetContext(withAuthCall(ctx)).
		SetBody(req).
		SetResult(&auth).
		Post("/auth/agent/login")
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return models.AgentAuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) AgentProfile(ctx context.Context) (*models.DeliveryAgent, error) {
	var agent models.DeliveryAgent
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetResult(&agent).
		Get("/agents/me")
	if err := c.coerce(ScopeAgent, resp, err); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (c *Client) UpdateAgentStatus(ctx context.Context, status models.AgentStatus) error {
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetBody(models.UpdateAgentStatusRequest{Status: status}).
		Put("/agents/me/status")
	return c.coerce(ScopeAgent, resp, err)
}

func (c *Client) UpdateAgentLocation(ctx context.Context, latitude, longitude float64) error {
	resp, err := c.delivery.R().
		SetContext(ctx).
		SetBody(models.UpdateLocationRequest{Latitude: latitude, Longitude: longitude}).
		Put("/agents/me/location")
	return c.coerce(ScopeAgent, resp, err)
}
