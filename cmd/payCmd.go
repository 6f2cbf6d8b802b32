package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/callback"
	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/utils"
)

var payCmd = &cobra.Command{
	Use:   "pay <orderId>",
	Short: "Pay for an order through Razorpay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCustomer(); err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		order, err := a.client.Order(cmd.Context(), orderID)
		if err != nil {
			return err
		}
		if order.PaymentStatus == models.PaymentCompleted {
			fmt.Printf("Order #%d is already paid.\n", order.ID)
			return nil
		}

		session, err := a.client.CreateRazorpayOrder(cmd.Context(), models.CreatePaymentRequest{
			OrderID:       order.ID,
			Amount:        order.TotalAmount,
			PaymentMethod: "RAZORPAY",
		})
		if err != nil {
			return err
		}

		srv := callback.New(a.cfg.CallbackAddr)
		fmt.Printf("Paying %s for order #%d.\n", utils.FormatMoney(session.Amount), order.ID)
		fmt.Printf("Complete the Razorpay checkout (key %s, order %s).\n", session.KeyID, session.RazorpayOrderID)
		fmt.Printf("Waiting for the payment callback on http://%s/payment/callback ...\n", a.cfg.CallbackAddr)

		result, err := srv.Wait(cmd.Context())
		if err != nil {
			return err
		}

		verified, err := a.client.VerifyRazorpayPayment(cmd.Context(), models.VerifyPaymentRequest{
			OrderID:           order.ID,
			RazorpayOrderID:   result.RazorpayOrderID,
			RazorpayPaymentID: result.RazorpayPaymentID,
			RazorpaySignature: result.RazorpaySignature,
		})
		if err != nil {
			return err
		}
		if !verified {
			return fmt.Errorf("payment could not be verified; the order stays unpaid")
		}
		fmt.Printf("Payment for order #%d verified.\n", order.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(payCmd)
}
