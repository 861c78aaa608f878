package scenario

import (
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func TestPerturbationsForSkipsCollapse(t *testing.T) {
	out := PerturbationsFor(0, domain.PerturbationPercent, DefaultPerturbations)
	if len(out) != 0 {
		t.Fatalf("expected all percent perturbations of a zero baseline to collapse, got %d", len(out))
	}
}

func TestPerturbationsForAbsoluteMode(t *testing.T) {
	out := PerturbationsFor(10, domain.PerturbationAbsolute, []float64{-5, 5})
	if len(out) != 2 {
		t.Fatalf("expected 2 perturbations, got %d", len(out))
	}
	if out[0].Value != 5 || out[1].Value != 15 {
		t.Errorf("unexpected values: %+v", out)
	}
}

func TestRobustScenariosIncludesCorners(t *testing.T) {
	params := []domain.UncertainParameter{{Path: "p", Min: 0, Max: 10}}
	nominal := map[string]float64{"p": 5}
	scenarios := RobustScenarios(params, nominal, 6)
	if len(scenarios) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(scenarios))
	}
	if scenarios[0]["p"] != 5 || scenarios[1]["p"] != 10 || scenarios[2]["p"] != 0 {
		t.Errorf("unexpected corner scenarios: %+v", scenarios[:3])
	}
}

func TestParetoWeightsTwoObjectivesSumToOne(t *testing.T) {
	weights := ParetoWeights(2, nil, 4)
	for _, w := range weights {
		sum := w[0] + w[1]
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("expected weights to sum to 1, got %v", w)
		}
	}
}

func TestParetoWeightsDedupes(t *testing.T) {
	weights := ParetoWeights(2, []float64{1, 0}, 4)
	count := 0
	for _, w := range weights {
		if w[0] > 0.999 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the (1,0) unit vector to dedupe against user weights, got %d copies", count)
	}
}
