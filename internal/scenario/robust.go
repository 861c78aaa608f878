package scenario

import (
	"math/rand"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// RobustSeed is the hard-coded seed used for reproducibility across
// invocations; RobustRequest has no seed field of its own since a
// fixed corner-plus-random-fill layout needs no caller-visible tuning.
const RobustSeed = 42

// RobustScenarios builds the nominal, all-max and all-min corners plus
// numScenarios-3 uniform random fills, seeded for reproducibility.
func RobustScenarios(params []domain.UncertainParameter, nominal map[string]float64, numScenarios int) []map[string]float64 {
	if numScenarios < 3 {
		numScenarios = 3
	}
	scenarios := make([]map[string]float64, 0, numScenarios)

	nominalScenario := make(map[string]float64, len(params))
	maxScenario := make(map[string]float64, len(params))
	minScenario := make(map[string]float64, len(params))
	for _, p := range params {
		nominalScenario[p.Path] = nominal[p.Path]
		maxScenario[p.Path] = p.Max
		minScenario[p.Path] = p.Min
	}
	scenarios = append(scenarios, nominalScenario, maxScenario, minScenario)

	rng := rand.New(rand.NewSource(RobustSeed))
	for i := 3; i < numScenarios; i++ {
		s := make(map[string]float64, len(params))
		for _, p := range params {
			s[p.Path] = p.Min + rng.Float64()*(p.Max-p.Min)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios
}
