package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/gateways"
	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/tracking"
	"github.com/bprathamesh20/food-delivery/utils"
)

var trackInterval time.Duration

var trackCmd = &cobra.Command{
	Use:   "track <orderId>",
	Short: "Follow an order's delivery live",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCustomer(); err != nil {
			return err
		}
		orderID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		order, err := a.client.Order(ctx, orderID)
		if err != nil {
			return err
		}
		printOrder(order)

		delivery, err := a.client.DeliveryByOrder(ctx, orderID)
		if errors.Is(err, gateways.ErrNotFound) {
			fmt.Println("No delivery agent assigned yet. Waiting...")
		} else if err != nil {
			return err
		} else {
			printDelivery(delivery)
		}

		opts := tracking.DefaultOptions()
		opts.PollInterval = trackInterval
		opts.OnLocationUpdate = func(loc models.AgentLocation) {
			fmt.Printf("%s  agent at %.5f, %.5f\n", loc.Timestamp, loc.Latitude, loc.Longitude)
		}
		opts.OnStatusUpdate = func(status models.DeliveryStatus) {
			fmt.Printf("Delivery status: %s\n", renderDeliveryStatus(status))
		}
		opts.OnError = func(err error) {
			fmt.Printf("tracking fetch failed: %v\n", err)
		}

		var deliveryID int64
		if delivery != nil {
			deliveryID = delivery.ID
		}
		tracker := tracking.New(a.client, deliveryID, opts)
		defer tracker.Stop()

		// Until a delivery exists for the order, re-check for the assignment
		// on the same cadence the tracker would poll on.
		for delivery == nil {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(opts.PollInterval):
			}
			delivery, err = a.client.DeliveryByOrder(ctx, orderID)
			if errors.Is(err, gateways.ErrNotFound) {
				delivery = nil
				continue
			}
			if err != nil {
				return err
			}
			printDelivery(delivery)
			tracker.SetDeliveryID(delivery.ID)
		}

		<-ctx.Done()
		fmt.Println("\nStopped tracking.")
		return nil
	},
}

func printDelivery(d *models.Delivery) {
	fmt.Printf("Delivery #%d  %s\n", d.ID, renderDeliveryStatus(d.Status))
	if d.DeliveryAgent != nil {
		fmt.Printf("Agent: %s (%s)\n", d.DeliveryAgent.Name, d.DeliveryAgent.PhoneNumber)
	}
	if eta := utils.FormatETA(d.EstimatedDeliveryTime, time.Now()); eta != "" {
		fmt.Printf("ETA: %s\n", eta)
	}
}

func init() {
	trackCmd.Flags().DurationVar(&trackInterval, "interval", tracking.DefaultPollInterval, "poll interval")
	rootCmd.AddCommand(trackCmd)
}
