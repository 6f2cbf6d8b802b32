package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/gateways"
	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/utils"
)

const (
	deliveryFee = 40.0
	taxRate     = 0.05
)

var (
	checkoutAddress      string
	checkoutInstructions string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order with the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCustomer(); err != nil {
			return err
		}
		lines := a.cart.Lines()
		if len(lines) == 0 {
			return fmt.Errorf("your cart is empty")
		}
		if strings.TrimSpace(checkoutAddress) == "" {
			return fmt.Errorf("a delivery address is required (--address)")
		}
		restaurant := a.cart.Restaurant()
		if restaurant == nil {
			return fmt.Errorf("your cart is empty")
		}

		req := models.CreateOrderRequest{
			CustomerID:          a.session.User().ID,
			RestaurantID:        restaurant.ID,
			DeliveryAddress:     checkoutAddress,
			SpecialInstructions: checkoutInstructions,
		}
		for _, line := range lines {
			req.Items = append(req.Items, models.CreateOrderItem{
				MenuItemID: line.ItemID,
				Quantity:   line.Quantity,
			})
		}

		subtotal := a.cart.Total()
		tax := subtotal * taxRate
		total := subtotal + deliveryFee + tax

		order, err := a.client.CreateOrder(cmd.Context(), req)
		if err != nil {
			return err
		}
		a.cart.Clear()

		fmt.Printf("Order #%d placed with %s.\n", order.ID, restaurant.Name)
		fmt.Printf("  Subtotal      %s\n", utils.FormatMoney(subtotal))
		fmt.Printf("  Delivery fee  %s\n", utils.FormatMoney(deliveryFee))
		fmt.Printf("  Tax (5%%)      %s\n", utils.FormatMoney(tax))
		fmt.Printf("  Total         %s\n", utils.FormatMoney(total))
		fmt.Printf("Pay with `food-delivery pay %d`.\n", order.ID)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your past orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCustomer(); err != nil {
			return err
		}
		orders, err := a.client.OrdersByCustomer(cmd.Context(), a.session.User().ID)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, order := range orders {
			fmt.Printf("#%-5d %-12s %-10s %s\n", order.ID,
				renderOrderStatus(order.OrderStatus), order.PaymentStatus,
				utils.FormatMoney(order.TotalAmount))
		}
		return nil
	},
}

var orderCmd = &cobra.Command{
	Use:   "order <orderId>",
	Short: "Show one order with its status timeline",
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
		printOrder(order)

		payment, err := a.client.PaymentByOrder(cmd.Context(), orderID)
		if errors.Is(err, gateways.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("\nPayment #%d  %s  %s (%s)\n", payment.ID, payment.Status,
			utils.FormatMoney(payment.Amount), payment.PaymentMethod)
		return nil
	},
}

var cancelOrderCmd = &cobra.Command{
	Use:   "cancel <orderId>",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCustomer(); err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}
		if err := a.client.CancelOrder(cmd.Context(), orderID); err != nil {
			return err
		}
		fmt.Printf("Order #%d cancelled.\n", orderID)
		return nil
	},
}

func printOrder(order *models.Order) {
	fmt.Printf("Order #%d  %s  %s\n", order.ID, order.PaymentStatus, utils.FormatMoney(order.TotalAmount))
	fmt.Printf("Deliver to: %s\n", order.DeliveryAddress)
	if order.SpecialInstructions != "" {
		fmt.Printf("Instructions: %s\n", order.SpecialInstructions)
	}
	for _, item := range order.Items {
		fmt.Printf("  %-28s x%d  %s\n", item.MenuItemName, item.Quantity, utils.FormatMoney(item.Subtotal))
	}
	fmt.Println()
	fmt.Println(renderTimeline(order.OrderStatus))
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "delivery address")
	checkoutCmd.Flags().StringVar(&checkoutInstructions, "instructions", "", "special instructions for the restaurant")
	rootCmd.AddCommand(checkoutCmd, ordersCmd, orderCmd, cancelOrderCmd)
}
