// Package toolcatalog builds the tool descriptor list (name, path,
// description and request JSON Schema) served by the HTTP discovery
// endpoint. The MCP server registers its tools separately and does not
// read this list.
package toolcatalog

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// Tool describes one operation exposed over HTTP.
type Tool struct {
	Name        string
	Path        string
	Description string
	Schema      *jsonschema.Schema
}

// All returns the full tool catalog, in HTTP route registration order.
// Schema inference failures are programming bugs (a request type lost a
// struct tag, say) and panic rather than degrade silently.
func All() []Tool {
	return []Tool{
		schemaFor("optimize_schedule", "/optimize_schedule", "Solve a flexible job-shop scheduling problem.", domain.ScheduleRequest{}),
		schemaFor("validate_schedule", "/validate_schedule", "Check a proposed schedule against job, machine, and precedence constraints.", domain.ValidateRequest{}),
		schemaFor("optimize_routing", "/optimize_routing", "Solve a capacitated vehicle routing problem with time windows.", domain.RoutingRequest{}),
		schemaFor("optimize_packing", "/optimize_packing", "Solve a multi-dimensional bin-packing problem.", domain.PackingRequest{}),
		schemaFor("analyze_sensitivity", "/analyze_sensitivity", "Measure how sensitive a solver's objective is to individual parameters.", domain.SensitivityRequest{}),
		schemaFor("optimize_robust", "/optimize_robust", "Pick a solution that holds up well across an uncertainty set.", domain.RobustRequest{}),
		schemaFor("optimize_stochastic", "/optimize_stochastic", "Sample scenarios from stochastic parameters and summarize the objective distribution.", domain.StochasticRequest{}),
		schemaFor("optimize_pareto", "/optimize_pareto", "Scalarize and solve across 2-4 competing objectives, reporting the Pareto frontier.", domain.ParetoRequest{}),
		schemaFor("prescriptive_advise", "/prescriptive_advise", "Forecast uncertain parameters and recommend ranked actions under a risk appetite.", domain.PrescriptiveRequest{}),
	}
}

func schemaFor[T any](name, path, description string, _ T) Tool {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic("toolcatalog: schema inference for " + name + " failed: " + err.Error())
	}
	return Tool{Name: name, Path: path, Description: description, Schema: schema}
}
