package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/packing"
	"github.com/opsintel/opsintel-mcp/internal/pareto"
	"github.com/opsintel/opsintel-mcp/internal/prescriptive"
	"github.com/opsintel/opsintel-mcp/internal/robust"
	"github.com/opsintel/opsintel-mcp/internal/routing"
	"github.com/opsintel/opsintel-mcp/internal/scheduling"
	"github.com/opsintel/opsintel-mcp/internal/sensitivity"
	"github.com/opsintel/opsintel-mcp/internal/stochastic"
)

func optimizeSchedule(ctx context.Context, _ *mcp.CallToolRequest, in domain.ScheduleRequest) (*mcp.CallToolResult, domain.ScheduleResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.ScheduleResponse{Status: domain.StatusError, Message: err.Error()}, nil
	}
	return nil, *scheduling.Solve(ctx, &in), nil
}

func validateSchedule(_ context.Context, _ *mcp.CallToolRequest, in domain.ValidateRequest) (*mcp.CallToolResult, domain.ValidateResponse, error) {
	return nil, *scheduling.Validate(&in), nil
}

func optimizeRouting(ctx context.Context, _ *mcp.CallToolRequest, in domain.RoutingRequest) (*mcp.CallToolResult, domain.RoutingResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.RoutingResponse{Status: domain.StatusError, Message: err.Error()}, nil
	}
	return nil, *routing.Solve(ctx, &in), nil
}

func optimizePacking(ctx context.Context, _ *mcp.CallToolRequest, in domain.PackingRequest) (*mcp.CallToolResult, domain.PackingResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.PackingResponse{Status: domain.StatusError, Message: err.Error()}, nil
	}
	return nil, *packing.Solve(ctx, &in), nil
}

func analyzeSensitivity(ctx context.Context, _ *mcp.CallToolRequest, in domain.SensitivityRequest) (*mcp.CallToolResult, domain.SensitivityResponse, error) {
	return nil, *sensitivity.Analyze(ctx, &in), nil
}

func optimizeRobust(ctx context.Context, _ *mcp.CallToolRequest, in domain.RobustRequest) (*mcp.CallToolResult, domain.RobustResponse, error) {
	return nil, *robust.Optimize(ctx, &in), nil
}

func optimizeStochastic(ctx context.Context, _ *mcp.CallToolRequest, in domain.StochasticRequest) (*mcp.CallToolResult, domain.StochasticResponse, error) {
	return nil, *stochastic.Optimize(ctx, &in), nil
}

func optimizePareto(ctx context.Context, _ *mcp.CallToolRequest, in domain.ParetoRequest) (*mcp.CallToolResult, domain.ParetoResponse, error) {
	return nil, *pareto.Optimize(ctx, &in), nil
}

func prescriptiveAdvise(ctx context.Context, _ *mcp.CallToolRequest, in domain.PrescriptiveRequest) (*mcp.CallToolResult, domain.PrescriptiveResponse, error) {
	return nil, *prescriptive.Advise(ctx, &in), nil
}
