package scenario

import "github.com/opsintel/opsintel-mcp/internal/domain"

// DefaultPerturbations is the default one-at-a-time perturbation set,
// expressed as percentages of each parameter's baseline value.
var DefaultPerturbations = []float64{-50, -20, -10, 10, 20, 50}

// PerturbationScenario is one sensitivity perturbation of a single path.
type PerturbationScenario struct {
	Delta float64
	Value float64
}

// PerturbationsFor computes the perturbed values for one parameter,
// skipping any perturbation that collapses back to the baseline.
func PerturbationsFor(baseline float64, mode domain.PerturbationMode, perturbations []float64) []PerturbationScenario {
	var out []PerturbationScenario
	for _, pct := range perturbations {
		var value float64
		if mode == domain.PerturbationAbsolute {
			value = baseline + pct
		} else {
			value = baseline * (1 + pct/100)
		}
		if value == baseline {
			continue
		}
		out = append(out, PerturbationScenario{Delta: pct, Value: value})
	}
	return out
}
