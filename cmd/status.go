package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check local state and store connectivity",
	Long: `Check the health of the client by verifying:
  • The local state database can be opened
  • Whether a login session is stored, and its role
  • The cart contents
  • That the store API answers

Useful when the store seems unreachable or the session behaves oddly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Akwaba Client Status"))
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 1: Opening local state..."))
		e, err := openEnv()
		if err != nil {
			fmt.Println(errStyle.Render("❌ Failed to open state database:"), err)
			return fmt.Errorf("status check failed")
		}
		defer e.Close()
		fmt.Println(successStyle.Render("✅ State database open"))
		if verbose {
			fmt.Printf("   Path: %s\n", e.cfg.StatePath)
		}
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 2: Checking session..."))
		switch {
		case e.session == nil:
			fmt.Println(warningStyle.Render("⚠️  Not logged in"))
		case e.session.IsAdmin():
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Logged in as %s (admin)", e.session.Name)))
		default:
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Logged in as %s", e.session.Name)))
		}
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 3: Checking cart..."))
		if count := e.cart.Count(); count > 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ %d article(s) in the cart, %.0f FCFA", count, e.cart.Total())))
		} else {
			fmt.Println(infoStyle.Render("   Cart is empty"))
		}
		fmt.Println()

		fmt.Println(infoStyle.Render("Step 4: Contacting the store API..."))
		if _, err := e.api.Products(); err != nil {
			fmt.Println(errStyle.Render("❌ Store API unreachable:"), err)
			if verbose {
				fmt.Printf("   URL: %s\n", e.cfg.APIURL)
			}
			return fmt.Errorf("status check failed: store API unreachable")
		}
		fmt.Println(successStyle.Render("✅ Store API answering"))
		if verbose {
			fmt.Printf("   URL: %s\n", e.cfg.APIURL)
		}
		fmt.Println()

		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println(successStyle.Render("✅ Everything looks good"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
