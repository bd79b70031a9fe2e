package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var ordersAll bool

// ordersCmd lists orders when called bare and groups the admin actions
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and manage orders",
	Long: `List your own orders, or with --all every order in the store
(admin only).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		var orders []internal.OrderSummary
		if ordersAll {
			if err := e.requireAdmin(); err != nil {
				return err
			}
			orders, err = e.api.AllOrders()
		} else {
			if err := e.requireSession(); err != nil {
				return err
			}
			orders, err = e.api.MyOrders()
		}
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}

		displayOrders(orders)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order with its line items (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id: %s", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		order, err := e.api.OrderDetails(id)
		if err != nil {
			return fmt.Errorf("failed to load order %d: %w", id, err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("📦 Order #%d (%s)", order.ID, order.Status)))
		fmt.Println()
		fmt.Printf("  %s %s (%s, %s)\n", titleStyle.Render("Customer:"), order.CustomerName, order.CustomerEmail, order.CustomerPhone)
		fmt.Printf("  %s %s, %s (%s)\n", titleStyle.Render("Shipping:"), order.ShippingAddress, order.ShippingCity, order.DeliveryMethod)
		if order.CreatedAt != "" {
			fmt.Printf("  %s %s\n", titleStyle.Render("Placed:"), order.CreatedAt)
		}
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Product")+"\t"+titleStyle.Render("Qty")+"\t"+titleStyle.Render("Unit")+"\t"+titleStyle.Render("Line total")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, item := range order.Items {
			_, _ = fmt.Fprintf(w, "%s\t%d\t%.0f\t%s\t\n",
				item.ProductName, item.Quantity, item.UnitPrice,
				priceStyle.Render(fmt.Sprintf("%.0f", item.UnitPrice*float64(item.Quantity))))
		}
		_ = w.Flush()
		fmt.Println()
		fmt.Printf("  %s %s FCFA\n", titleStyle.Render("Total:"), priceStyle.Render(fmt.Sprintf("%.0f", order.Total)))
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Move an order to a new status (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order id: %s", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		if err := e.api.UpdateOrderStatus(id, args[1]); err != nil {
			return fmt.Errorf("failed to update order %d: %w", id, err)
		}
		fmt.Printf("Order %d is now %q.\n", id, args[1])
		return nil
	},
}

func displayOrders(orders []internal.OrderSummary) {
	if len(orders) == 0 {
		fmt.Println(headerStyle.Render("📦 No orders found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("📦 %d order(s)", len(orders))))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Customer")+"\t"+titleStyle.Render("Total")+"\t"+titleStyle.Render("Status")+"\t"+titleStyle.Render("Placed")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, o := range orders {
		placed := o.CreatedAt
		if placed == "" {
			placed = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.Itoa(o.ID)),
			o.CustomerName,
			priceStyle.Render(fmt.Sprintf("%.0f", o.Total)),
			o.Status,
			dimStyle.Render(placed))
	}
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersStatusCmd)

	ordersCmd.Flags().BoolVar(&ordersAll, "all", false, "List every order in the store (admin)")
}
