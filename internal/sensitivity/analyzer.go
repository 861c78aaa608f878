package sensitivity

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/opsintel/opsintel-mcp/internal/dispatch"
	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/scenario"
)

// Analyze runs SensitivityAnalyzer: it perturbs each parameter around
// its baseline and scores how much the objective moves.
func Analyze(ctx context.Context, req *domain.SensitivityRequest) *domain.SensitivityResponse {
	if err := req.Validate(); err != nil {
		return &domain.SensitivityResponse{Status: domain.StatusError, Message: err.Error()}
	}

	baseline := dispatch.Solve(ctx, req.SolverType, req.SolverRequest, req.MaxSolveTimeSeconds)
	if !baseline.Feasible() {
		return &domain.SensitivityResponse{
			Status:  domain.StatusError,
			Message: "baseline is not feasible; sensitivity requires a feasible baseline to compute percentage deltas",
		}
	}
	obj0 := baseline.ObjectiveValue

	params := req.Parameters
	if len(params) == 0 {
		params = autoDetectParameters(req.SolverType, req.SolverRequest)
	}

	perturbations := scenario.DefaultPerturbations
	if req.MaxPerturbationsPerParam > 0 && req.MaxPerturbationsPerParam < len(perturbations) {
		perturbations = perturbations[:req.MaxPerturbationsPerParam]
	}

	cache := scenario.NewCache()
	var results []domain.ParameterSensitivity
	for _, p := range params {
		result, err := analyzeParameter(ctx, req, p, obj0, perturbations, cache)
		if err != nil {
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SensitivityScore > results[j].SensitivityScore
	})

	var mostSensitive string
	var maxScore float64
	for _, r := range results {
		if r.SensitivityScore > maxScore {
			maxScore = r.SensitivityScore
			mostSensitive = r.Path
		}
	}

	return &domain.SensitivityResponse{
		Status:            domain.StatusFeasible,
		Message:           fmt.Sprintf("analyzed %d parameter(s) against baseline %s=%.2f", len(results), baseline.ObjectiveName, obj0),
		BaselineObjective: obj0,
		ObjectiveName:     baseline.ObjectiveName,
		Parameters:        results,
		MostSensitive:     mostSensitive,
	}
}

func analyzeParameter(ctx context.Context, req *domain.SensitivityRequest, p domain.ParameterSpec, obj0 float64, perturbations []float64, cache *scenario.Cache) (domain.ParameterSensitivity, error) {
	baselineValue, err := scenario.Baseline(req.SolverRequest, p.Path)
	if err != nil {
		return domain.ParameterSensitivity{}, err
	}

	mode := p.Mode
	if mode == "" {
		mode = domain.PerturbationPercent
	}
	perturbed := scenario.PerturbationsFor(baselineValue, mode, perturbations)

	var deltas []float64
	var perturbationPcts []float64
	var elasticitySum float64
	var elasticityCount int
	var positiveHurts, negativeHurts int
	var causedInfeasible bool

	for _, pert := range perturbed {
		id := fmt.Sprintf("%s@%.0f", p.Path, pert.Delta)
		outcome := scenario.Solve(ctx, req.SolverType, req.SolverRequest, id, map[string]float64{p.Path: pert.Value}, req.MaxSolveTimeSeconds, cache)

		var deltaPct float64
		if outcome.Feasible {
			deltaPct = 100 * (outcome.ObjectiveValue - obj0) / obj0
			paramDeltaPct := pert.Delta
			if mode == domain.PerturbationAbsolute && baselineValue != 0 {
				paramDeltaPct = 100 * (pert.Value - baselineValue) / baselineValue
			}
			if paramDeltaPct != 0 {
				elasticitySum += math.Abs(deltaPct) / math.Abs(paramDeltaPct)
				elasticityCount++
			}
			if deltaPct > 0 {
				if pert.Delta > 0 {
					positiveHurts++
				} else {
					negativeHurts++
				}
			}
		} else {
			deltaPct = 100
			causedInfeasible = true
			if pert.Delta > 0 {
				positiveHurts++
			} else {
				negativeHurts++
			}
		}
		deltas = append(deltas, deltaPct)
		perturbationPcts = append(perturbationPcts, pert.Delta)
	}

	var maxAbsDelta float64
	for _, d := range deltas {
		if math.Abs(d) > maxAbsDelta {
			maxAbsDelta = math.Abs(d)
		}
	}
	score := math.Min(100, maxAbsDelta)

	var elasticity float64
	if elasticityCount > 0 {
		elasticity = elasticitySum / float64(elasticityCount)
	}

	direction := "symmetric"
	if positiveHurts > negativeHurts {
		direction = "positive"
	} else if negativeHurts > positiveHurts {
		direction = "negative"
	}

	critical := causedInfeasible || score > 25

	var band domain.RiskBand
	switch {
	case causedInfeasible && critical:
		band = domain.RiskCriticalInfeasible
	case critical:
		band = domain.RiskCritical
	case score > 10:
		band = domain.RiskModerate
	default:
		band = domain.RiskLow
	}

	return domain.ParameterSensitivity{
		Path:             p.Path,
		BaselineValue:    baselineValue,
		Perturbations:    perturbationPcts,
		DeltaPercents:    deltas,
		SensitivityScore: score,
		Elasticity:       elasticity,
		Direction:        direction,
		Critical:         critical,
		RiskSummary:      band,
		CausedInfeasible: causedInfeasible,
	}, nil
}
