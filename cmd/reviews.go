package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/ui"
	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Collect normalized reviews (API, falling back to product pages)",
	RunE:  runReviews,
}

func init() {
	reviewsCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(reviewsCmd)
}

func runReviews(cmd *cobra.Command, args []string) error {
	scraper, err := buildScraper()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start("Collecting reviews...")
	ctx := pipeline.WithProgress(context.Background(), spin.Update)

	// The product-page fallback walks the raw product list, so the listing
	// crawl runs first even when only reviews were asked for.
	rawProducts, err := scraper.CollectProducts(ctx)
	if err != nil {
		spin.Stop()
		return fmt.Errorf("reviews failed: %w", err)
	}
	reviews, err := scraper.CollectReviews(ctx, rawProducts)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("reviews failed: %w", err)
	}

	switch format {
	case "table":
		printReviewsTable(reviews)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reviews)
	}
	return nil
}
