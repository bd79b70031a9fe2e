package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var cartQty int

// cartCmd shows the cart when called bare and groups the mutations
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and manage your shopping cart",
	Long: `Show the cart, or use the subcommands to change it.

The cart lives in the local state database: it survives between
invocations and is only emptied by a successful checkout or an
explicit ` + "`akwaba cart clear`" + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		items := e.cart.Items()
		if len(items) == 0 {
			fmt.Println(headerStyle.Render("🛒 Your cart is empty"))
			fmt.Println(idStyle.Render("💡 Browse with `akwaba products list`"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("🛒 %d article(s) in your cart", e.cart.Count())))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Unit")+"\t"+titleStyle.Render("Qty")+"\t"+titleStyle.Render("Line total")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, item := range items {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t\n",
				idStyle.Render(strconv.Itoa(item.ID)),
				item.Name,
				fmt.Sprintf("%.0f", item.Price),
				item.Quantity,
				priceStyle.Render(fmt.Sprintf("%.0f", item.Price*float64(item.Quantity))))
		}
		_ = w.Flush()

		fmt.Println()
		fmt.Printf("  %s %s FCFA\n", titleStyle.Render("Total:"), priceStyle.Render(fmt.Sprintf("%.0f", e.cart.Total())))
		fmt.Println(idStyle.Render("💡 Ready? `akwaba checkout` places the order"))
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Long: `Add a product to the cart, fetching its current name and price from
the catalog. Adding a product already in the cart increases its
quantity instead of creating a second line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[0])
		}
		if cartQty < 1 {
			return fmt.Errorf("--qty must be at least 1")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		product, err := e.api.Product(id)
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}

		for i := 0; i < cartQty; i++ {
			if err := e.cart.AddToCart(*product); err != nil {
				return err
			}
		}

		fmt.Printf("Added %d × %s to your cart (%d article(s), %.0f FCFA total).\n",
			cartQty, product.Name, e.cart.Count(), e.cart.Total())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id: %s", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		e.cart.RemoveFromCart(id)
		fmt.Printf("Removed product %d. %d article(s) left.\n", id, e.cart.Count())
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		e.cart.ClearCart()
		fmt.Println("Cart emptied.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)

	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "How many units to add")
}
