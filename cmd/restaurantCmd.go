package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/utils"
)

var restaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "List restaurants",
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, err := a.client.Restaurants(cmd.Context())
		if err != nil {
			return err
		}
		if len(restaurants) == 0 {
			fmt.Println("No restaurants available right now.")
			return nil
		}
		for _, r := range restaurants {
			open := "open"
			if !r.IsOpen {
				open = "closed"
			}
			fmt.Printf("#%d  %s (%s, %.1f★, %s)\n    %s\n", r.ID, r.Name, r.CuisineType, r.Rating, open, r.Address)
		}
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu <restaurantId>",
	Short: "Show a restaurant's menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurantID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid restaurant id %q", args[0])
		}
		items, err := a.client.Menu(cmd.Context(), restaurantID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("This restaurant has no menu items yet.")
			return nil
		}
		for _, item := range items {
			marker := ""
			if !item.Available {
				marker = "  (unavailable)"
			}
			fmt.Printf("#%d  %-28s %s%s\n", item.ID, item.Name, utils.FormatMoney(item.Price), marker)
			if item.Description != "" {
				fmt.Printf("    %s\n", item.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restaurantsCmd, menuCmd)
}
