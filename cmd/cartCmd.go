package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/store"
	"github.com/bprathamesh20/food-delivery/utils"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCart()
	},
}

var cartAddOverride bool

var cartAddCmd = &cobra.Command{
	Use:   "add <restaurantId> <menuItemId>",
	Short: "Add one unit of a menu item to the cart",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurantID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id %q", args[0])
		}
		menuItemID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", args[1])
		}

		restaurant, err := a.client.Restaurant(cmd.Context(), restaurantID)
		if err != nil {
			return err
		}
		item, err := a.client.MenuItem(cmd.Context(), menuItemID)
		if err != nil {
			return err
		}

		err = a.cart.Add(*item, models.CartRestaurant{
			ID:      restaurant.ID,
			Name:    restaurant.Name,
			Address: restaurant.Address,
		}, cartAddOverride)
		if errors.Is(err, store.ErrDifferentRestaurant) {
			return fmt.Errorf("your cart contains items from %s; re-run with --clear to replace it", a.cart.Restaurant().Name)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s added to cart.\n", item.Name)
		return nil
	},
}

var cartSetQtyCmd = &cobra.Command{
	Use:   "set-qty <menuItemId> <quantity>",
	Short: "Change a cart line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		a.cart.SetQuantity(itemID, quantity)
		return showCart()
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <menuItemId>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid menu item id %q", args[0])
		}
		a.cart.Remove(itemID)
		fmt.Println("Item removed from cart.")
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Run: func(cmd *cobra.Command, args []string) {
		a.cart.Clear()
		fmt.Println("Cart cleared.")
	},
}

func showCart() error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	restaurant := a.cart.Restaurant()
	if restaurant != nil {
		fmt.Printf("Cart (%s)\n", restaurant.Name)
	}
	for _, line := range lines {
		fmt.Printf("  #%d  %-28s x%d  %s\n", line.ItemID, line.Name, line.Quantity, utils.FormatMoney(line.Subtotal()))
	}
	fmt.Printf("%d items, subtotal %s\n", a.cart.Count(), utils.FormatMoney(a.cart.Total()))
	return nil
}

func init() {
	cartAddCmd.Flags().BoolVar(&cartAddOverride, "clear", false, "clear items from another restaurant first")
	cartCmd.AddCommand(cartAddCmd, cartSetQtyCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
