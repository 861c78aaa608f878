// Package stochastic implements StochasticOptimizer: sampling scenarios
// from stochastic parameter distributions and summarizing the resulting
// objective distribution.
package stochastic

import (
	"context"
	"fmt"
	"math"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/scenario"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// Optimize draws NumScenarios samples from the stochastic parameters,
// solves each, and summarizes the resulting objective distribution.
func Optimize(ctx context.Context, req *domain.StochasticRequest) *domain.StochasticResponse {
	if err := req.Validate(); err != nil {
		return &domain.StochasticResponse{Status: domain.StatusError, Message: err.Error()}
	}

	scenarios := scenario.StochasticScenarios(req.StochasticParameters, req.NumScenarios, req.Seed)

	type solved struct {
		outcome domain.ScenarioOutcome
	}
	cache := scenario.NewCache()
	var feasibleObjectives []float64
	var solvedScenarios []solved
	objectiveName := ""
	for i, s := range scenarios {
		id := fmt.Sprintf("stochastic-%d", i)
		outcome := scenario.Solve(ctx, req.SolverType, req.SolverRequest, id, s, req.MaxSolveTimeSeconds, cache)
		solvedScenarios = append(solvedScenarios, solved{outcome: outcome})
		if outcome.Feasible {
			feasibleObjectives = append(feasibleObjectives, outcome.ObjectiveValue)
			objectiveName = outcome.ObjectiveName
		}
	}

	n := len(scenarios)
	probInfeasible := 100 * float64(n-len(feasibleObjectives)) / float64(n)

	if len(feasibleObjectives) == 0 {
		return &domain.StochasticResponse{
			Status:                      domain.StatusInfeasible,
			Message:                     "no sampled scenario is feasible",
			ProbabilityOfInfeasibility:  statutil.Round2(probInfeasible),
		}
	}

	summary := statutil.SummarizeDistribution(feasibleObjectives)
	expectedValue := summary.Mean
	var90 := statutil.VaR(feasibleObjectives, 90)
	var95 := statutil.VaR(feasibleObjectives, 95)
	var99 := statutil.VaR(feasibleObjectives, 99)
	cvar90 := statutil.CVaR(feasibleObjectives, 90)
	cvar95 := statutil.CVaR(feasibleObjectives, 95)
	cvar99 := statutil.CVaR(feasibleObjectives, 99)
	bestCase := summary.Min
	worstCase := summary.Max

	var target float64
	switch req.OptimizeFor {
	case domain.RiskExpectedValue:
		target = expectedValue
	case domain.RiskCVaR90:
		target = cvar90
	case domain.RiskCVaR95:
		target = cvar95
	case domain.RiskCVaR99:
		target = cvar99
	default: // RiskWorstCase
		target = worstCase
	}

	var chosen *domain.ScenarioOutcome
	var bestDiff float64
	for i := range solvedScenarios {
		o := solvedScenarios[i].outcome
		if !o.Feasible {
			continue
		}
		diff := math.Abs(o.ObjectiveValue - target)
		if chosen == nil || diff < bestDiff {
			oc := o
			chosen = &oc
			bestDiff = diff
		}
	}

	cv := summary.CoefficientOfVariation
	var narrative string
	switch {
	case cv > 0.30:
		narrative = fmt.Sprintf("high uncertainty (cv=%.2f); outcomes swing widely across sampled scenarios", cv)
	case cv > 0.15:
		narrative = fmt.Sprintf("moderate uncertainty (cv=%.2f); plan around the selected %s target", cv, req.OptimizeFor)
	case cv > 0.05:
		narrative = fmt.Sprintf("mild uncertainty (cv=%.2f); the distribution is reasonably tight", cv)
	default:
		narrative = fmt.Sprintf("low uncertainty (cv=%.2f); the objective is nearly deterministic across scenarios", cv)
	}

	return &domain.StochasticResponse{
		Status:  domain.StatusFeasible,
		Message: fmt.Sprintf("sampled %d scenarios, %d feasible (%.1f%% infeasible)", n, len(feasibleObjectives), probInfeasible),
		Distribution: domain.DistributionStats{
			Mean:                   statutil.Round2(summary.Mean),
			Median:                 statutil.Round2(summary.Median),
			StdDev:                 statutil.Round2(summary.StdDev),
			Min:                    statutil.Round2(summary.Min),
			Max:                    statutil.Round2(summary.Max),
			Percentiles:            roundMap(summary.Percentiles),
			Skewness:               statutil.Round3(summary.Skewness),
			CoefficientOfVariation: statutil.Round3(summary.CoefficientOfVariation),
		},
		ExpectedValue:               statutil.Round2(expectedValue),
		VaR90:                       statutil.Round2(var90),
		VaR95:                       statutil.Round2(var95),
		VaR99:                       statutil.Round2(var99),
		CVaR90:                      statutil.Round2(cvar90),
		CVaR95:                      statutil.Round2(cvar95),
		CVaR99:                      statutil.Round2(cvar99),
		BestCase:                    statutil.Round2(bestCase),
		WorstCase:                   statutil.Round2(worstCase),
		ProbabilityOfInfeasibility:  statutil.Round2(probInfeasible),
		RecommendedScenario:         chosen.ParameterValues,
		RecommendedObjective:        statutil.Round2(chosen.ObjectiveValue),
		ObjectiveName:               objectiveName,
		Narrative:                   narrative,
	}
}

func roundMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = statutil.Round2(v)
	}
	return out
}
