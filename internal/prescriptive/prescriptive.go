// Package prescriptive implements PrescriptiveAdvisor: a
// forecast-driven three-scenario solve with ranked, appetite-aware
// recommendations.
package prescriptive

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/forecast"
	"github.com/opsintel/opsintel-mcp/internal/scenario"
)

const (
	scenarioConservative = "conservative"
	scenarioModerate     = "moderate"
	scenarioAggressive   = "aggressive"
)

// Advise runs PrescriptiveAdvisor: a per-parameter forecast feeding three
// scenarios, a feasibility-risk classification, and ranked actions.
func Advise(ctx context.Context, req *domain.PrescriptiveRequest) *domain.PrescriptiveResponse {
	if err := req.Validate(); err != nil {
		return &domain.PrescriptiveResponse{Status: domain.StatusError, Message: err.Error()}
	}

	var parameterForecasts []domain.ParameterForecast
	conservative := map[string]float64{}
	moderate := map[string]float64{}
	aggressive := map[string]float64{}

	for _, p := range req.ForecastParameters {
		if _, err := scenario.Baseline(req.SolverRequest, p.Path); err != nil {
			return &domain.PrescriptiveResponse{Status: domain.StatusError, Message: fmt.Sprintf("parameter %q does not resolve: %v", p.Path, err)}
		}
		fr := &domain.ForecastRequest{Series: p.Series, Method: p.Method, Horizon: p.Horizon, Confidence: p.Confidence, Alpha: p.Alpha, SeasonalPeriod: p.SeasonalPeriod}
		result, err := forecast.Run(fr)
		if err != nil {
			return &domain.PrescriptiveResponse{Status: domain.StatusError, Message: fmt.Sprintf("forecasting %q: %v", p.Path, err)}
		}

		normalizedSpread := 0.0
		if result.Point != 0 {
			normalizedSpread = math.Abs(result.Upper-result.Lower) / math.Abs(result.Point)
		}
		parameterForecasts = append(parameterForecasts, domain.ParameterForecast{
			Path:             p.Path,
			Forecast:         *result,
			NormalizedSpread: normalizedSpread,
		})

		// conservative/moderate/aggressive inject the upper/point/lower
		// forecast bound respectively.
		conservative[p.Path] = result.Upper
		moderate[p.Path] = result.Point
		aggressive[p.Path] = result.Lower
	}

	scenarios := []domain.PrescriptiveScenario{
		solveNamed(ctx, req, scenarioConservative, conservative),
		solveNamed(ctx, req, scenarioModerate, moderate),
		solveNamed(ctx, req, scenarioAggressive, aggressive),
	}

	feasibleCount := 0
	for _, s := range scenarios {
		if s.Feasible {
			feasibleCount++
		}
	}
	var feasibilityRisk string
	switch {
	case feasibleCount == 3:
		feasibilityRisk = "low"
	case feasibleCount >= 2:
		feasibilityRisk = "medium"
	default:
		feasibilityRisk = "high"
	}

	criticalParameter := mostCritical(parameterForecasts)
	actions := buildActions(parameterForecasts, feasibilityRisk, req.RiskAppetite)

	moderateObj := scenarios[1].ObjectiveValue
	objectiveName := scenarios[1].ObjectiveName
	executive := fmt.Sprintf(
		"moderate-case %s is %.2f; feasibility risk is %s across conservative/moderate/aggressive scenarios; most critical driver is %s",
		objectiveName, moderateObj, feasibilityRisk, criticalParameter,
	)

	return &domain.PrescriptiveResponse{
		Status:                  domain.StatusFeasible,
		Message:                 fmt.Sprintf("forecasted %d parameter(s), solved 3 scenarios (%d feasible)", len(req.ForecastParameters), feasibleCount),
		ParameterForecasts:      parameterForecasts,
		Scenarios:               scenarios,
		FeasibilityRisk:         feasibilityRisk,
		CriticalParameter:       criticalParameter,
		Actions:                 actions,
		ExecutiveRecommendation: executive,
	}
}

func solveNamed(ctx context.Context, req *domain.PrescriptiveRequest, name string, values map[string]float64) domain.PrescriptiveScenario {
	outcome := scenario.Solve(ctx, req.SolverType, req.SolverRequest, name, values, req.MaxSolveTimeSeconds, nil)
	return domain.PrescriptiveScenario{
		Name:            name,
		ParameterValues: values,
		ObjectiveValue:  outcome.ObjectiveValue,
		ObjectiveName:   outcome.ObjectiveName,
		Feasible:        outcome.Feasible,
		Status:          outcome.Status,
	}
}

func mostCritical(forecasts []domain.ParameterForecast) string {
	if len(forecasts) == 0 {
		return ""
	}
	best := forecasts[0]
	for _, f := range forecasts[1:] {
		if f.NormalizedSpread > best.NormalizedSpread {
			best = f
		}
	}
	return best.Path
}

func buildActions(forecasts []domain.ParameterForecast, feasibilityRisk string, appetite domain.RiskAppetite) []domain.Action {
	var actions []domain.Action

	if feasibilityRisk == "high" {
		actions = append(actions, domain.Action{
			Priority:    1,
			Description: "feasibility risk is high across the conservative/moderate/aggressive scenarios; revisit capacity or constraints before committing to a plan",
		})
	}

	sorted := append([]domain.ParameterForecast(nil), forecasts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].NormalizedSpread > sorted[j].NormalizedSpread })

	nextPriority := len(actions) + 1
	for _, f := range sorted {
		var description string
		switch f.Forecast.Trend {
		case domain.TrendIncreasing:
			description = fmt.Sprintf("plan for rising %s", f.Path)
		case domain.TrendVolatile:
			description = fmt.Sprintf("add a safety buffer for %s", f.Path)
		case domain.TrendDecreasing:
			description = fmt.Sprintf("monitor declining %s", f.Path)
		default:
			continue
		}
		actions = append(actions, domain.Action{Priority: nextPriority, Description: description})
		nextPriority++
	}

	if appetite == domain.RiskAppetiteAggressive && feasibilityRisk != "low" {
		actions = append(actions, domain.Action{
			Priority:    nextPriority,
			Description: "aggressive risk appetite combined with non-low feasibility risk; confirm fallback capacity exists before acting on the lower-bound scenario",
		})
	}

	return actions
}
