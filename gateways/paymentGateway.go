package gateways

import (
	"context"
	"fmt"

	"github.com/bprathamesh20/food-delivery/models"
)

func (c *Client) CreateRazorpayOrder(ctx context.Context, req models.CreatePaymentRequest) (*models.RazorpayOrder, error) {
	var session models.RazorpayOrder
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&session).
		Post("/payments/razorpay/order")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &session, nil
}

// VerifyRazorpayPayment reports whether the provider signature checks out.
// A failed verification is reported to the caller, never retried here.
func (c *Client) VerifyRazorpayPayment(ctx context.Context, req models.VerifyPaymentRequest) (bool, error) {
	var result models.VerifyPaymentResponse
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/payments/razorpay/verify")
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return false, err
	}
	return result.Verified, nil
}

func (c *Client) PaymentByOrder(ctx context.Context, orderID int64) (*models.Payment, error) {
	var payment models.Payment
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&payment).
		Get(fmt.Sprintf("/payments/order/%d", orderID))
	if err := c.coerce(ScopeCustomer, resp, err); err != nil {
		return nil, err
	}
	return &payment, nil
}
