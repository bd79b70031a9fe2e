package cmd

import (
	"fmt"
	"strconv"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactSubject string
	contactBody    string

	messagesMarkRead int
)

// contactCmd represents the public contact form
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if contactName == "" || contactEmail == "" || contactBody == "" {
			return fmt.Errorf("--name, --email and --message are required")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		req := internal.ContactRequest{
			FullName: contactName,
			Email:    contactEmail,
			Subject:  contactSubject,
			Message:  contactBody,
		}
		if err := e.api.SendContactMessage(req); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
		fmt.Println("Message sent. The store will get back to you by email.")
		return nil
	},
}

// messagesCmd is the admin contact inbox
var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read the contact inbox (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.requireAdmin(); err != nil {
			return err
		}

		if messagesMarkRead > 0 {
			if err := e.api.MarkMessageRead(messagesMarkRead); err != nil {
				return fmt.Errorf("failed to mark message %d read: %w", messagesMarkRead, err)
			}
			fmt.Printf("Message %d marked as read.\n", messagesMarkRead)
			return nil
		}

		messages, err := e.api.ContactMessages()
		if err != nil {
			return fmt.Errorf("failed to load messages: %w", err)
		}

		if len(messages) == 0 {
			fmt.Println(headerStyle.Render("✉️  Inbox empty"))
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("✉️  %d message(s)", len(messages))))
		fmt.Println()
		for _, m := range messages {
			marker := titleStyle.Render("○")
			if !m.IsRead {
				marker = priceStyle.Render("●")
			}
			fmt.Printf("  %s %s %s <%s>\n", marker, idStyle.Render(strconv.Itoa(m.ID)), m.FullName, m.Email)
			if m.Subject != "" {
				fmt.Printf("      %s\n", titleStyle.Render(m.Subject))
			}
			fmt.Printf("      %s\n", m.Message)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(messagesCmd)

	contactCmd.Flags().StringVar(&contactName, "name", "", "Your full name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Your email address")
	contactCmd.Flags().StringVar(&contactSubject, "subject", "", "Message subject")
	contactCmd.Flags().StringVar(&contactBody, "message", "", "Message body")

	messagesCmd.Flags().IntVar(&messagesMarkRead, "read", 0, "Mark this message id as read instead of listing")
}
