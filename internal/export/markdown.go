package export

import (
	"fmt"
	"io"

	"github.com/akwaba-bebe/akwaba-cli/internal"
)

// MarkdownExporter exports order history as a Markdown table
type MarkdownExporter struct{}

// Export writes the orders as a Markdown document
func (e *MarkdownExporter) Export(orders []internal.OrderSummary, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Order History\n\n")
	_, _ = fmt.Fprintf(w, "**Orders:** %d\n\n", len(orders))

	if len(orders) == 0 {
		_, _ = fmt.Fprintf(w, "_No orders._\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| ID | Customer | Total | Status | Created | Delivery |\n")
	_, _ = fmt.Fprintf(w, "|---|---|---|---|---|---|\n")
	for _, o := range orders {
		created := o.CreatedAt
		if created == "" {
			created = "-"
		}
		_, _ = fmt.Fprintf(w, "| %d | %s | %.0f | %s | %s | %s |\n",
			o.ID, o.CustomerName, o.Total, o.Status, created, o.DeliveryMethod)
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
