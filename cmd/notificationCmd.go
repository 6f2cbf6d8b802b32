package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	notificationsAsAgent bool
	notificationsRead    int64
	notificationsReadAll bool
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications, or mark them read",
	RunE: func(cmd *cobra.Command, args []string) error {
		userType := "CUSTOMER"
		var userID int64
		if notificationsAsAgent {
			if err := requireAgent(); err != nil {
				return err
			}
			userType = "AGENT"
			userID = a.agentSession.Agent().ID
		} else {
			if err := requireCustomer(); err != nil {
				return err
			}
			userID = a.session.User().ID
		}

		if notificationsRead != 0 {
			if err := a.client.MarkNotificationRead(cmd.Context(), notificationsRead); err != nil {
				return err
			}
			fmt.Printf("Notification #%d marked read.\n", notificationsRead)
			return nil
		}
		if notificationsReadAll {
			if err := a.client.MarkAllNotificationsRead(cmd.Context(), userID, userType); err != nil {
				return err
			}
			fmt.Println("All notifications marked read.")
			return nil
		}

		notifications, err := a.client.Notifications(cmd.Context(), userID, userType)
		if err != nil {
			return err
		}
		if len(notifications) == 0 {
			fmt.Println("No notifications.")
			return nil
		}
		for _, n := range notifications {
			marker := "*"
			if n.Read {
				marker = " "
			}
			if n.Title != "" {
				fmt.Printf("%s #%-5d %s: %s\n", marker, n.ID, n.Title, n.Message)
			} else {
				fmt.Printf("%s #%-5d %s\n", marker, n.ID, n.Message)
			}
		}
		return nil
	},
}

func init() {
	notificationsCmd.Flags().BoolVar(&notificationsAsAgent, "agent", false, "use the agent session")
	notificationsCmd.Flags().Int64Var(&notificationsRead, "read", 0, "mark one notification read")
	notificationsCmd.Flags().BoolVar(&notificationsReadAll, "read-all", false, "mark every notification read")
	rootCmd.AddCommand(notificationsCmd)
}
