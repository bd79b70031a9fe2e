package export

import (
	"encoding/json"
	"io"

	"github.com/akwaba-bebe/akwaba-cli/internal"
)

// JSONLExporter exports one order per line, suitable for piping into
// line-oriented tools
type JSONLExporter struct{}

// Export writes each order as a standalone JSON line
func (e *JSONLExporter) Export(orders []internal.OrderSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, order := range orders {
		if err := enc.Encode(order); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
