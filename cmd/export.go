package cmd

import (
	"fmt"
	"os"

	"github.com/akwaba-bebe/akwaba-cli/internal"
	"github.com/akwaba-bebe/akwaba-cli/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportAll    bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history",
	Long: `Export your order history in one of several formats. With --all,
admins export the whole store's order history instead.

Formats: json, jsonl, yaml, md. Without --output the export is written
to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		var orders []internal.OrderSummary
		if exportAll {
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

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
			}
			defer f.Close()
			out = f
		}

		if err := exporter.Export(orders, out); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}

		if exportOutput != "" {
			fmt.Fprintf(os.Stderr, "Exported %d order(s) to %s\n", len(orders), exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, yaml, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every order in the store (admin)")
}
