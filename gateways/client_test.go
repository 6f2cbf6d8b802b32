package gateways

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bprathamesh20/food-delivery/initializers"
	"github.com/bprathamesh20/food-delivery/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(initializers.Config{
		APIBaseURL:         server.URL,
		DeliveryAPIBaseURL: server.URL,
	})
	return client, server
}

func TestRequestsCarryBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	client.SetCustomerTokenSource(staticToken("tok-123"))

	_, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var sawAuthHeader bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := client.Restaurants(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuthHeader)
}

func TestCreateOrderValidatesBeforeSending(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.CreateOrder(context.Background(), models.CreateOrderRequest{
		DeliveryAddress: "   ",
		Items:           []models.CreateOrderItem{{MenuItemID: 1, Quantity: 1}},
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "deliveryAddress", validationErr.Field)

	_, err = client.CreateOrder(context.Background(), models.CreateOrderRequest{
		DeliveryAddress: "12 MG Road",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items", validationErr.Field)

	assert.Zero(t, requests, "invalid input never reaches the wire")
}

func TestUpdateOrderStatusSendsStatusBody(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.UpdateOrderStatus(context.Background(), 7, models.OrderConfirmed))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/orders/7/status", gotPath)
	assert.JSONEq(t, `{"status":"CONFIRMED"}`, gotBody)
}

func TestNotFoundBecomesErrNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.DeliveryByOrder(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnauthorizedInvokesHookWithScope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var cleared []Scope
	client.OnUnauthorized(func(s Scope) { cleared = append(cleared, s) })

	_, err := client.Order(context.Background(), 1)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, []Scope{ScopeCustomer}, cleared)

	_, err = client.DeliveriesByAgent(context.Background(), 1)
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, []Scope{ScopeCustomer, ScopeAgent}, cleared)
}

func TestFailedLoginDoesNotInvokeUnauthorizedHook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	var hookCalls int
	client.OnUnauthorized(func(Scope) { hookCalls++ })

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid email or password", authErr.Message)
	assert.Zero(t, hookCalls, "a rejected login must not wipe existing credentials")

	_, err = client.AgentLogin(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	require.ErrorAs(t, err, &authErr)
	assert.Zero(t, hookCalls)
}

func TestServerMessageExtraction(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Restaurant is closed"}`))
	}))

	_, err := client.Order(context.Background(), 1)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Equal(t, "Restaurant is closed", reqErr.Message)
}

func TestOpaqueErrorBodyFallsBackToGenericMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))

	_, err := client.Order(context.Background(), 1)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, msgGenericFailure, reqErr.Message)
}

func TestDeliveryClientPrefersAgentToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	client.SetCustomerTokenSource(staticToken("customer-tok"))

	// Customers read tracking with their own token.
	_, err := client.Tracking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer customer-tok", gotAuth)

	// Once an agent is logged in, their token wins on the delivery service.
	client.SetAgentTokenSource(staticToken("agent-tok"))
	_, err = client.Tracking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer agent-tok", gotAuth)
}
