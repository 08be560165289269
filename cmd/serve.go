package cmd

import (
	"fmt"

	mcpserver "github.com/neperme-a11y/brand-reputation-monitor/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	scraper, err := buildScraper()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting brandmon MCP server on stdio...")

	return mcpserver.Serve(mcpserver.Deps{
		Scraper:    scraper,
		OutputFile: cfg.OutputFile,
	})
}
