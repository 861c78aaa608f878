// Package mcpserver exposes the same nine operations as the HTTP
// transport, as MCP tools over stdio, via the official MCP Go SDK.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with every operation registered as a
// tool. Each handler delegates to the same internal engine the HTTP
// transport uses; no solver logic lives in this package.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "opsintel", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_schedule",
		Description: "Solve a flexible job-shop scheduling problem.",
	}, optimizeSchedule)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_schedule",
		Description: "Check a proposed schedule against job, machine, and precedence constraints.",
	}, validateSchedule)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_routing",
		Description: "Solve a capacitated vehicle routing problem with time windows.",
	}, optimizeRouting)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_packing",
		Description: "Solve a multi-dimensional bin-packing problem.",
	}, optimizePacking)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_sensitivity",
		Description: "Measure how sensitive a solver's objective is to individual parameters.",
	}, analyzeSensitivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_robust",
		Description: "Pick a solution that holds up well across an uncertainty set.",
	}, optimizeRobust)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_stochastic",
		Description: "Sample scenarios from stochastic parameters and summarize the objective distribution.",
	}, optimizeStochastic)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "optimize_pareto",
		Description: "Scalarize and solve across 2-4 competing objectives, reporting the Pareto frontier.",
	}, optimizePareto)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "prescriptive_advise",
		Description: "Forecast uncertain parameters and recommend ranked actions under a risk appetite.",
	}, prescriptiveAdvise)

	return server
}

// Serve runs the stdio JSON-RPC loop until the client disconnects.
func Serve(ctx context.Context, version string) error {
	server := NewServer(version)
	return server.Run(ctx, &mcp.StdioTransport{})
}
