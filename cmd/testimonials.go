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

var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "Collect deduplicated testimonials",
	RunE:  runTestimonials,
}

func init() {
	testimonialsCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(testimonialsCmd)
}

func runTestimonials(cmd *cobra.Command, args []string) error {
	scraper, err := buildScraper()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start("Collecting testimonials...")
	ctx := pipeline.WithProgress(context.Background(), spin.Update)
	testimonials, err := scraper.CollectTestimonials(ctx)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("testimonials failed: %w", err)
	}

	switch format {
	case "table":
		printTestimonialsTable(testimonials)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(testimonials)
	}
	return nil
}
