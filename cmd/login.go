package cmd

import (
	"fmt"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your store account",
	Long: `Exchange your email and password for a session token.

The token, your role and your display name are stored in the local
state database and attached to authenticated requests until you log
out or the session expires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginEmail == "" || loginPassword == "" {
			return fmt.Errorf("both --email and --password are required")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		resp, err := e.api.Login(loginEmail, loginPassword)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		session := &internal.Session{
			Token: resp.Token,
			Role:  resp.Role,
			Name:  resp.FullName,
		}
		if err := internal.SaveSession(e.store, session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		fmt.Printf("Welcome back, %s!\n", resp.FullName)
		if session.IsAdmin() {
			fmt.Println("Admin commands are available.")
		}
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Long: `Erase the stored token, role and display name.

The cart is kept: signing out does not empty it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.session == nil {
			fmt.Println("You are not logged in.")
			return nil
		}

		if err := internal.ClearSession(e.store); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("Logged out. À bientôt!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
