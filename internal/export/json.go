package export

import (
	"encoding/json"
	"io"

	"github.com/akwaba-bebe/akwaba-cli/internal"
)

// JSONExporter exports order history as a single indented JSON array
type JSONExporter struct{}

// Export writes the orders as pretty-printed JSON
func (e *JSONExporter) Export(orders []internal.OrderSummary, w io.Writer) error {
	if orders == nil {
		orders = []internal.OrderSummary{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(orders)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
