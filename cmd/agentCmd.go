package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/models"
	"github.com/bprathamesh20/food-delivery/tracking"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Delivery agent commands",
}

var (
	agentName          string
	agentEmail         string
	agentPassword      string
	agentPhone         string
	agentVehicleType   string
	agentVehicleNumber string
	agentCity          string
	agentLicense       string
)

var agentRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register as a delivery agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, err := a.agentSession.Register(cmd.Context(), a.client, models.AgentRegisterRequest{
			Name:          agentName,
			Email:         agentEmail,
			Password:      agentPassword,
			PhoneNumber:   agentPhone,
			VehicleType:   agentVehicleType,
			VehicleNumber: agentVehicleNumber,
			City:          agentCity,
			LicenseNumber: agentLicense,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Welcome aboard, %s! You are registered and logged in.\n", agent.Name)
		return nil
	},
}

var agentLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a delivery agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		agent, err := a.agentSession.Login(cmd.Context(), a.client, models.LoginRequest{
			Email:    agentEmail,
			Password: agentPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Welcome back, %s!\n", agent.Name)
		return nil
	},
}

var agentLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the agent session",
	Run: func(cmd *cobra.Command, args []string) {
		a.agentSession.Logout()
		fmt.Println("Agent logged out.")
	},
}

var agentStatusSet string

var agentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show or toggle your availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAgent(); err != nil {
			return err
		}
		profile, err := a.client.AgentProfile(cmd.Context())
		if err != nil {
			return err
		}
		if agentStatusSet == "" {
			fmt.Printf("You are %s (%s, rating %.1f, %d deliveries).\n",
				renderAgentStatus(profile.Status), profile.VehicleType, profile.Rating, profile.TotalDeliveries)
			return nil
		}

		target := models.AgentStatus(agentStatusSet)
		if agentStatusSet == "toggle" {
			if profile.Status == models.AgentAvailable {
				target = models.AgentOffline
			} else {
				target = models.AgentAvailable
			}
		}
		switch target {
		case models.AgentAvailable, models.AgentOffline:
		case models.AgentBusy:
			return fmt.Errorf("BUSY is assigned by the dispatcher, not set by hand")
		default:
			return fmt.Errorf("unknown status %q (use AVAILABLE, OFFLINE or toggle)", agentStatusSet)
		}
		if err := a.client.UpdateAgentStatus(cmd.Context(), target); err != nil {
			return err
		}
		fmt.Printf("You are now %s.\n", renderAgentStatus(target))
		return nil
	},
}

var agentDeliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "List deliveries assigned to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAgent(); err != nil {
			return err
		}
		deliveries, err := a.client.DeliveriesByAgent(cmd.Context(), a.agentSession.Agent().ID)
		if err != nil {
			return err
		}
		if len(deliveries) == 0 {
			fmt.Println("No deliveries assigned.")
			return nil
		}
		for _, d := range deliveries {
			fmt.Printf("#%-5d order #%-5d %-12s %s -> %s\n", d.ID, d.OrderID,
				renderDeliveryStatus(d.Status), d.PickupAddress, d.DeliveryAddress)
		}
		return nil
	},
}

var advanceRemarks string

var agentAdvanceCmd = &cobra.Command{
	Use:   "advance <deliveryId>",
	Short: "Move a delivery to its next status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAgent(); err != nil {
			return err
		}
		deliveryID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid delivery id %q", args[0])
		}
		delivery, err := a.client.Delivery(cmd.Context(), deliveryID)
		if err != nil {
			return err
		}
		next := models.NextDeliveryStatus(delivery.Status)
		if next == "" {
			return fmt.Errorf("delivery #%d is %s and has no next step", delivery.ID, delivery.Status)
		}
		if err := a.client.UpdateDeliveryStatus(cmd.Context(), deliveryID, next, advanceRemarks); err != nil {
			return err
		}
		fmt.Printf("Delivery #%d: %s -> %s\n", deliveryID,
			renderDeliveryStatus(delivery.Status), renderDeliveryStatus(next))
		return nil
	},
}

var (
	reportLat      float64
	reportLng      float64
	reportWatch    bool
	reportInterval time.Duration
	reportDelivery int64
)

var agentReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report your position, once or continuously",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAgent(); err != nil {
			return err
		}
		source := &tracking.TickerSource{
			Position: tracking.Position{Latitude: reportLat, Longitude: reportLng},
			Interval: reportInterval,
		}
		watcher := tracking.NewWatcher(source, a.client)
		watcher.SetActiveDelivery(reportDelivery)
		watcher.OnError(func(err error) {
			fmt.Printf("location feed stopped: %v\n", err)
		})

		if !reportWatch {
			position, err := watcher.ReportOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Reported position %.5f, %.5f.\n", position.Latitude, position.Longitude)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
		fmt.Printf("Reporting %.5f, %.5f every %s. Press Ctrl-C to stop.\n",
			reportLat, reportLng, reportInterval)
		<-ctx.Done()
		fmt.Println("\nStopped reporting.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{agentRegisterCmd, agentLoginCmd} {
		c.Flags().StringVar(&agentEmail, "email", "", "agent email")
		c.Flags().StringVar(&agentPassword, "password", "", "agent password")
		c.MarkFlagRequired("email")
		c.MarkFlagRequired("password")
	}
	agentRegisterCmd.Flags().StringVar(&agentName, "name", "", "full name")
	agentRegisterCmd.Flags().StringVar(&agentPhone, "phone", "", "phone number")
	agentRegisterCmd.Flags().StringVar(&agentVehicleType, "vehicle-type", "", "BIKE, SCOOTER or CAR")
	agentRegisterCmd.Flags().StringVar(&agentVehicleNumber, "vehicle-number", "", "vehicle registration")
	agentRegisterCmd.Flags().StringVar(&agentCity, "city", "", "operating city")
	agentRegisterCmd.Flags().StringVar(&agentLicense, "license", "", "licence number")
	agentRegisterCmd.MarkFlagRequired("name")
	agentRegisterCmd.MarkFlagRequired("phone")

	agentStatusCmd.Flags().StringVar(&agentStatusSet, "set", "", "AVAILABLE, OFFLINE or toggle")

	agentAdvanceCmd.Flags().StringVar(&advanceRemarks, "remarks", "", "note for the tracking history")

	agentReportCmd.Flags().Float64Var(&reportLat, "lat", 0, "latitude")
	agentReportCmd.Flags().Float64Var(&reportLng, "lng", 0, "longitude")
	agentReportCmd.Flags().BoolVar(&reportWatch, "watch", false, "keep reporting until interrupted")
	agentReportCmd.Flags().DurationVar(&reportInterval, "interval", 30*time.Second, "reporting cadence with --watch")
	agentReportCmd.Flags().Int64Var(&reportDelivery, "delivery", 0, "also append to this delivery's tracking history")
	agentReportCmd.MarkFlagRequired("lat")
	agentReportCmd.MarkFlagRequired("lng")

	agentCmd.AddCommand(agentRegisterCmd, agentLoginCmd, agentLogoutCmd,
		agentStatusCmd, agentDeliveriesCmd, agentAdvanceCmd, agentReportCmd)
	rootCmd.AddCommand(agentCmd)
}
