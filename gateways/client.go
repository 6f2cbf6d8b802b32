package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/bprathamesh20/food-delivery/initializers"
)

// Scope names which credential set a request was authorized with, so a 401
// clears the right one.
type Scope string

const (
	ScopeCustomer Scope = "customer"
	ScopeAgent    Scope = "agent"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means no Authorization header is attached.
type TokenSource interface {
	Token() string
}

type emptyTokenSource struct{}

func (emptyTokenSource) Token() string { return "" }

// Client wraps the platform API and the delivery-service API behind typed
// request/response methods. It is stateless apart from its configuration;
// all session state lives in the stores that back the token sources.
type Client struct {
	api      *resty.Client
	delivery *resty.Client

	customerToken TokenSource
	agentToken    TokenSource

	// onUnauthorized runs when a request comes back 401, except for auth
	// calls themselves (a failed login must not trigger a credential wipe).
	onUnauthorized func(Scope)
}

func NewClient(cfg initializers.Config) *Client {
	c := &Client{
		customerToken: emptyTokenSource{},
		agentToken:    emptyTokenSource{},
	}

	c.api = newRestyClient(cfg.APIBaseURL, func() string {
		return c.customerToken.Token()
	})
	// The delivery service accepts the agent token, falling back to the
	// customer token for customer-facing tracking reads.
	c.delivery = newRestyClient(cfg.DeliveryAPIBaseURL, func() string {
		if t := c.agentToken.Token(); t != "" {
			return t
		}
		return c.customerToken.Token()
	})
	return c
}

func newRestyClient(baseURL string, token func() string) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if t := token(); t != "" {
			req.SetHeader("Authorization", "Bearer "+t)
		}
		return nil
	})
	return client
}

func (c *Client) SetCustomerTokenSource(ts TokenSource) {
	if ts != nil {
		c.customerToken = ts
	}
}

func (c *Client) SetAgentTokenSource(ts TokenSource) {
	if ts != nil {
		c.agentToken = ts
	}
}

func (c *Client) OnUnauthorized(fn func(Scope)) {
	c.onUnauthorized = fn
}

type authCallKey struct{}

// withAuthCall marks a request as part of the login/register surface, which
// suppresses the 401 credential-clearing hook.
func withAuthCall(ctx context.Context) context.Context {
	return context.WithValue(ctx, authCallKey{}, true)
}

func isAuthCall(ctx context.Context) bool {
	v, _ := ctx.Value(authCallKey{}).(bool)
	return v
}

// coerce converts a resty response into the error taxonomy: nil on 2xx,
// ErrNotFound on 404, AuthError on 401 and RequestError otherwise, with the
// server message extracted when the payload carries one.
func (c *Client) coerce(scope Scope, resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		if c.onUnauthorized != nil && !isAuthCall(resp.Request.Context()) {
			c.onUnauthorized(scope)
		}
		return &AuthError{Message: serverMessage(resp.Body(), "Session expired. Please log in again.")}
	default:
		return &RequestError{
			StatusCode: resp.StatusCode(),
			Message:    serverMessage(resp.Body(), msgGenericFailure),
		}
	}
}

func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}
