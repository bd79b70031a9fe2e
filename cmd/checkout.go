package cmd

import (
	"fmt"
	"strings"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	checkoutFirstName string
	checkoutLastName  string
	checkoutEmail     string
	checkoutPhone     string
	checkoutDelivery  string
	checkoutCity      string
	checkoutCommune   string
	checkoutAddress   string
	checkoutNote      string
	checkoutAccount   bool
	checkoutPassword  string
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the cart contents",
	Long: `Submit the cart as an order.

Guests can order too; with --create-account the store opens an account
using --password. When you are logged in, your stored display name
prefills the customer name. The cart is emptied only after the store
accepts the order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		items := e.cart.Items()
		if len(items) == 0 {
			return fmt.Errorf("your cart is empty, nothing to order")
		}

		firstName, lastName := checkoutFirstName, checkoutLastName
		if firstName == "" && lastName == "" && e.session != nil && e.session.Name != "" {
			// Same prefill the web checkout does with the stored name.
			parts := strings.SplitN(e.session.Name, " ", 2)
			firstName = parts[0]
			if len(parts) > 1 {
				lastName = parts[1]
			}
		}
		if firstName == "" || checkoutPhone == "" || checkoutCity == "" {
			return fmt.Errorf("--first-name (or a login session), --phone and --city are required")
		}
		if checkoutAccount && checkoutPassword == "" {
			return fmt.Errorf("--create-account requires --password")
		}

		req := internal.OrderRequest{
			FirstName:       firstName,
			LastName:        lastName,
			Email:           checkoutEmail,
			Phone:           checkoutPhone,
			DeliveryMethod:  checkoutDelivery,
			ShippingCity:    checkoutCity,
			ShippingCommune: checkoutCommune,
			ShippingAddress: checkoutAddress,
			CreateAccount:   checkoutAccount,
			Password:        checkoutPassword,
			OrderNote:       checkoutNote,
			Items:           items,
			Total:           e.cart.Total(),
		}

		if err := e.api.CreateOrder(req); err != nil {
			return fmt.Errorf("order failed: %w", err)
		}

		// Only a confirmed order empties the cart.
		e.cart.ClearCart()

		fmt.Println("Commande validée avec succès ! Merci de votre confiance.")
		fmt.Printf("Total charged: %.0f FCFA\n", req.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
	checkoutCmd.Flags().StringVar(&checkoutFirstName, "first-name", "", "Customer first name")
	checkoutCmd.Flags().StringVar(&checkoutLastName, "last-name", "", "Customer last name")
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "Contact email")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "Contact phone")
	checkoutCmd.Flags().StringVar(&checkoutDelivery, "delivery", "home", "Delivery method (home or pickup)")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "Shipping city")
	checkoutCmd.Flags().StringVar(&checkoutCommune, "commune", "", "Shipping commune")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "Shipping address")
	checkoutCmd.Flags().StringVar(&checkoutNote, "note", "", "Note for the order")
	checkoutCmd.Flags().BoolVar(&checkoutAccount, "create-account", false, "Also create a customer account")
	checkoutCmd.Flags().StringVar(&checkoutPassword, "password", "", "Password for the new account")
}
