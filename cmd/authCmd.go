package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bprathamesh20/food-delivery/models"
)

var loginEmail, loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := a.session.Login(cmd.Context(), a.client, models.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		fmt.Printf("Welcome back, %s!\n", user.Name)
		return nil
	},
}

var signupName, signupEmail, signupPhone, signupPassword string

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a customer account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := a.session.Signup(cmd.Context(), a.client, models.SignupRequest{
			Name:     signupName,
			Email:    signupEmail,
			Phone:    signupPhone,
			Password: signupPassword,
		})
		if err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}
		fmt.Printf("Account created successfully. Welcome, %s!\n", user.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current customer",
	Run: func(cmd *cobra.Command, args []string) {
		a.session.Logout()
		fmt.Println("Logged out successfully.")
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	signupCmd.Flags().StringVar(&signupName, "name", "", "full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupPhone, "phone", "", "phone number")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "account password")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd)
}
