package cmd

import (
	"fmt"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	articleTitle   string
	articleContent string
	articleImage   string
)

// articlesCmd groups the tips-article commands
var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Read and publish parenting tips articles",
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		articles, err := e.api.Articles()
		if err != nil {
			return fmt.Errorf("failed to load articles: %w", err)
		}

		if len(articles) == 0 {
			fmt.Println(headerStyle.Render("📰 No articles yet"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("📰 %d article(s)", len(articles))))
		fmt.Println()
		for _, a := range articles {
			fmt.Printf("  %s %s\n", idStyle.Render(fmt.Sprintf("%d", a.ID)), titleStyle.Render(a.Title))
			if a.CreatedAt != "" {
				fmt.Printf("      %s\n", dimStyle.Render(a.CreatedAt))
			}
			fmt.Printf("      %s\n", truncate(a.Content, 120))
			fmt.Println()
		}
		return nil
	},
}

var articlesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Publish an article (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if articleTitle == "" || articleContent == "" {
			return fmt.Errorf("--title and --content are required")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		a := internal.Article{
			Title:    articleTitle,
			Content:  articleContent,
			ImageURL: articleImage,
		}
		if err := e.api.CreateArticle(a); err != nil {
			return fmt.Errorf("failed to publish article: %w", err)
		}
		fmt.Printf("Article %q published.\n", articleTitle)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(articlesCmd)
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesAddCmd)

	articlesAddCmd.Flags().StringVar(&articleTitle, "title", "", "Article title")
	articlesAddCmd.Flags().StringVar(&articleContent, "content", "", "Article body")
	articlesAddCmd.Flags().StringVar(&articleImage, "image", "", "Illustration URL")
}
