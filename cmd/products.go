package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/ui"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Collect and dedupe the product catalog",
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().String("format", "json", "Output format: json, table")
	productsCmd.Flags().Bool("raw", false, "Print raw (pre-dedup, category-tagged) products")
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	scraper, err := buildScraper()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	raw, _ := cmd.Flags().GetBool("raw")

	spin := ui.NewSpinner()
	spin.Start("Collecting products...")
	ctx := pipeline.WithProgress(context.Background(), spin.Update)
	rawProducts, err := scraper.CollectProducts(ctx)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("products failed: %w", err)
	}

	if raw {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rawProducts)
	}

	products := shop.DedupeProducts(rawProducts)
	switch format {
	case "table":
		printProductsTable(products)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}
	return nil
}
