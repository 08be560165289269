package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
)

// Deps carries the wired scraper and run configuration into the tool
// handlers.
type Deps struct {
	Scraper    *shop.Scraper
	OutputFile string
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(deps Deps) error {
	s := server.NewMCPServer(
		"brand-reputation-monitor",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, deps)

	return server.ServeStdio(s)
}
