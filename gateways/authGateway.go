package gateways

import (
	"context"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	resp, err := c.api.R().
		SetContext(withAuthCall(ctx)).
		SetBody(req).
		SetResult(&auth).
		Post("/auth/login")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	resp, err := c.api.R().
		SetContext(withAuthCall(ctx)).
		SetBody(req).
		SetResult(&auth).
		Post("/auth/signup")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}
