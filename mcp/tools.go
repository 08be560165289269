package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/neperme-a11y/brand-reputation-monitor/internal/shop"
)

func registerTools(s *server.MCPServer, deps Deps) {
	// scrape_snapshot
	snapshotTool := mcp.NewTool("scrape_snapshot",
		mcp.WithDescription("Run the full acquisition pipeline (products, testimonials, reviews) and return the snapshot document"),
		mcp.WithBoolean("write",
			mcp.Description("Also persist the snapshot to the configured output file (default: false)"),
		),
	)
	s.AddTool(snapshotTool, handleScrapeSnapshot(deps))

	// scrape_products
	productsTool := mcp.NewTool("scrape_products",
		mcp.WithDescription("Collect the deduplicated product catalog"),
	)
	s.AddTool(productsTool, handleScrapeProducts(deps))

	// scrape_testimonials
	testimonialsTool := mcp.NewTool("scrape_testimonials",
		mcp.WithDescription("Collect deduplicated customer testimonials"),
	)
	s.AddTool(testimonialsTool, handleScrapeTestimonials(deps))

	// load_snapshot
	loadTool := mcp.NewTool("load_snapshot",
		mcp.WithDescription("Return the last written snapshot document, if one exists"),
	)
	s.AddTool(loadTool, handleLoadSnapshot(deps))
}

func handleScrapeSnapshot(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := deps.Scraper.BuildSnapshot(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("snapshot error: %v", err)), nil
		}

		if request.GetBool("write", false) {
			if err := shop.WriteSnapshot(deps.OutputFile, snap); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("write error: %v", err)), nil
			}
		}

		data, _ := json.MarshalIndent(snap, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleScrapeProducts(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := deps.Scraper.CollectProducts(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("products error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(shop.DedupeProducts(raw), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleScrapeTestimonials(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		testimonials, err := deps.Scraper.CollectTestimonials(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("testimonials error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(testimonials, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleLoadSnapshot(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := shop.LoadSnapshot(deps.OutputFile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load error: %v", err)), nil
		}
		if snap == nil {
			return mcp.NewToolResultText(`{"status":"no snapshot written yet"}`), nil
		}

		data, _ := json.MarshalIndent(snap, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
