package cmd

import (
	"fmt"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	signupEmail    string
	signupPassword string
	signupName     string
	signupPhone    string
)

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new customer account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if signupEmail == "" || signupPassword == "" || signupName == "" {
			return fmt.Errorf("--email, --password and --name are required")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		req := internal.SignupRequest{
			Email:    signupEmail,
			Password: signupPassword,
			FullName: signupName,
			Phone:    signupPhone,
		}
		if err := e.api.Signup(req); err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}

		fmt.Println("Account created. Run `akwaba login` to sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupPhone, "phone", "", "Phone number")
}
