package cmd

import (
	"context"
	"fmt"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/pipeline"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/ui"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run the full acquisition pipeline and write the snapshot",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("out", "", "Output file (default from config, data.json)")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	scraper, err := buildScraper()
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		out = v
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Collecting snapshot from %s...", cfg.BaseURL))
	ctx := pipeline.WithProgress(context.Background(), spin.Update)
	snap, err := scraper.BuildSnapshot(ctx)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	if err := shop.WriteSnapshot(out, snap); err != nil {
		return err
	}

	fmt.Printf("Saved -> %s | products=%d testimonials=%d reviews=%d\n",
		out, len(snap.Products), len(snap.Testimonials), len(snap.Reviews))
	return nil
}
