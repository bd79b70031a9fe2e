package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	categoriesWithSubs bool
	subcategoryOf      int
)

// categoriesCmd groups the category commands
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse and manage catalog categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Long: `List the catalog categories.

With --subcategories, each category's subcategories are fetched one
category at a time, the same lazy per-row loading the storefront's
accordion uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		categories, err := e.api.Categories()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println(headerStyle.Render("📂 No categories"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("📂 %d categor(ies)", len(categories))))
		fmt.Println()
		for _, c := range categories {
			fmt.Printf("  %s %s\n", idStyle.Render(strconv.Itoa(c.ID)), titleStyle.Render(c.Name))
			if !categoriesWithSubs {
				continue
			}
			subs, err := e.api.Subcategories(c.ID)
			if err != nil {
				fmt.Printf("      %s\n", dimStyle.Render(fmt.Sprintf("(subcategories unavailable: %v)", err)))
				continue
			}
			for _, s := range subs {
				fmt.Printf("      %s %s\n", idStyle.Render(strconv.Itoa(s.ID)), s.Name)
			}
		}
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category or subcategory (admin)",
	Long: `Create a category, or with --under a subcategory of an existing
category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		name := args[0]
		if subcategoryOf > 0 {
			if err := e.api.CreateSubcategory(name, subcategoryOf); err != nil {
				return fmt.Errorf("failed to create subcategory: %w", err)
			}
			fmt.Printf("Subcategory %q created under category %d.\n", name, subcategoryOf)
			return nil
		}

		if err := e.api.CreateCategory(name); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		fmt.Printf("Category %q created.\n", name)
		return nil
	},
}

var categoriesRenameCmd = &cobra.Command{
	Use:   "rename <category-id> <name>",
	Short: "Rename a category (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id: %s", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		if err := e.api.UpdateCategory(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename category %d: %w", id, err)
		}
		fmt.Printf("Category %d renamed to %q.\n", id, args[1])
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a category (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id: %s", args[0])
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		if err := e.api.DeleteCategory(id); err != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
		fmt.Printf("Category %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRenameCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)

	categoriesListCmd.Flags().BoolVar(&categoriesWithSubs, "subcategories", false, "Also fetch each category's subcategories")
	categoriesAddCmd.Flags().IntVar(&subcategoryOf, "under", 0, "Create as a subcategory of this category id")
}
