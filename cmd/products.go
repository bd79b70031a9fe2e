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

var (
	productsCategory int

	productName     string
	productDesc     string
	productPrice    float64
	productStock    int
	productCatID    int
	productImageURL string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// productsCmd groups the catalog commands
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	Long:  `List the store catalog, optionally filtered to one category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		products, err := e.api.Products()
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}

		if productsCategory > 0 {
			filtered := make([]internal.Product, 0, len(products))
			for _, p := range products {
				if p.CategoryID == productsCategory {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		displayProducts(products)
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product in detail",
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

		p, err := e.api.Product(id)
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("🧸 %s", p.Name)))
		fmt.Println()
		fmt.Printf("  %s %s\n", titleStyle.Render("Price:"), priceStyle.Render(fmt.Sprintf("%.0f FCFA", p.Price)))
		fmt.Printf("  %s %d\n", titleStyle.Render("In stock:"), p.StockQuantity)
		if p.Description != "" {
			fmt.Printf("  %s %s\n", titleStyle.Render("About:"), p.Description)
		}
		if p.ImageURL != "" {
			fmt.Printf("  %s %s\n", titleStyle.Render("Image:"), dimStyle.Render(p.ImageURL))
		}
		fmt.Println()
		fmt.Println(idStyle.Render(fmt.Sprintf("💡 Add it to your cart with `akwaba cart add %d`", p.ID)))
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if productName == "" || productPrice <= 0 {
			return fmt.Errorf("--name and a positive --price are required")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		p := internal.Product{
			Name:          productName,
			Description:   productDesc,
			Price:         productPrice,
			StockQuantity: productStock,
			CategoryID:    productCatID,
			ImageURL:      productImageURL,
		}
		if err := e.api.CreateProduct(p); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		fmt.Printf("Product %q created.\n", productName)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update a catalog product (admin)",
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

		if err := e.requireAdmin(); err != nil {
			return err
		}

		// Fetch current values so unset flags keep them.
		current, err := e.api.Product(id)
		if err != nil {
			return fmt.Errorf("failed to load product %d: %w", id, err)
		}
		if cmd.Flags().Changed("name") {
			current.Name = productName
		}
		if cmd.Flags().Changed("description") {
			current.Description = productDesc
		}
		if cmd.Flags().Changed("price") {
			current.Price = productPrice
		}
		if cmd.Flags().Changed("stock") {
			current.StockQuantity = productStock
		}
		if cmd.Flags().Changed("category") {
			current.CategoryID = productCatID
		}
		if cmd.Flags().Changed("image") {
			current.ImageURL = productImageURL
		}

		if err := e.api.UpdateProduct(id, *current); err != nil {
			return fmt.Errorf("failed to update product %d: %w", id, err)
		}
		fmt.Printf("Product %d updated.\n", id)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Remove a product from the catalog (admin)",
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

		if err := e.requireAdmin(); err != nil {
			return err
		}

		if err := e.api.DeleteProduct(id); err != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, err)
		}
		fmt.Printf("Product %d deleted.\n", id)
		return nil
	},
}

// truncate shortens s to at most max runes, appending "..." when cut.
// Byte slicing would split multi-byte characters in accented French names.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func displayProducts(products []internal.Product) {
	if len(products) == 0 {
		fmt.Println(headerStyle.Render("🧸 No products found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("🧸 %d product(s)", len(products)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Price")+"\t"+titleStyle.Render("Stock")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, p := range products {
		name := truncate(p.Name, 40)

		stock := strconv.Itoa(p.StockQuantity)
		if p.StockQuantity == 0 {
			stock = dimStyle.Render("out")
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.Itoa(p.ID)),
			name,
			priceStyle.Render(fmt.Sprintf("%.0f", p.Price)),
			stock)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("💡 Tip: `akwaba products show <id>` for details, `akwaba cart add <id>` to buy"))
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsShowCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)

	productsListCmd.Flags().IntVar(&productsCategory, "category", 0, "Only show products in this category")

	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productDesc, "description", "", "Product description")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price in FCFA")
		c.Flags().IntVar(&productStock, "stock", 0, "Stock quantity")
		c.Flags().IntVar(&productCatID, "category", 0, "Category id")
		c.Flags().StringVar(&productImageURL, "image", "", "Image URL")
	}
}
