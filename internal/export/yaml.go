package export

import (
	"io"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports order history in YAML format
type YAMLExporter struct{}

// yamlOrder mirrors OrderSummary with yaml field names
type yamlOrder struct {
	ID             int     `yaml:"id"`
	CustomerName   string  `yaml:"customer_name"`
	Total          float64 `yaml:"total"`
	Status         string  `yaml:"status"`
	CreatedAt      string  `yaml:"created_at,omitempty"`
	DeliveryMethod string  `yaml:"delivery_method,omitempty"`
}

// Export writes the orders as a YAML document
func (e *YAMLExporter) Export(orders []internal.OrderSummary, w io.Writer) error {
	doc := struct {
		Orders []yamlOrder `yaml:"orders"`
	}{Orders: make([]yamlOrder, 0, len(orders))}

	for _, o := range orders {
		doc.Orders = append(doc.Orders, yamlOrder{
			ID:             o.ID,
			CustomerName:   o.CustomerName,
			Total:          o.Total,
			Status:         o.Status,
			CreatedAt:      o.CreatedAt,
			DeliveryMethod: o.DeliveryMethod,
		})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
