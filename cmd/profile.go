package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	profileFirstName string
	profileLastName  string
	profilePhone     string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your account profile",
	Long: `Show the profile of the logged-in account. Pass any of
--first-name, --last-name or --phone to update those fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireSession(); err != nil {
			return err
		}

		profile, err := e.api.Profile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		updating := cmd.Flags().Changed("first-name") ||
			cmd.Flags().Changed("last-name") ||
			cmd.Flags().Changed("phone")
		if updating {
			if cmd.Flags().Changed("first-name") {
				profile.FirstName = profileFirstName
			}
			if cmd.Flags().Changed("last-name") {
				profile.LastName = profileLastName
			}
			if cmd.Flags().Changed("phone") {
				profile.Phone = profilePhone
			}
			if err := e.api.UpdateProfile(*profile); err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			fmt.Println("Profile updated.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("👤 %s %s", profile.FirstName, profile.LastName)))
		fmt.Println()
		fmt.Printf("  %s %s\n", titleStyle.Render("Email:"), profile.Email)
		if profile.Phone != "" {
			fmt.Printf("  %s %s\n", titleStyle.Render("Phone:"), profile.Phone)
		}
		fmt.Printf("  %s %s\n", titleStyle.Render("Role:"), profile.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileFirstName, "first-name", "", "New first name")
	profileCmd.Flags().StringVar(&profileLastName, "last-name", "", "New last name")
	profileCmd.Flags().StringVar(&profilePhone, "phone", "", "New phone number")
}
