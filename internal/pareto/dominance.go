package pareto

import (
	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// internalVector converts a point's raw objective values to the
// "smaller is better" sign convention used for dominance comparison:
// maximize_* objectives are negated.
func internalVector(p domain.ParetoPoint, objectives []domain.ParetoObjectiveName) []float64 {
	out := make([]float64, len(objectives))
	for i, o := range objectives {
		v := p.ObjectiveValues[string(o)]
		if o.Maximize() {
			v = -v
		}
		out[i] = v
	}
	return out
}

// dominates reports whether a is at-least-as-good as b on every
// objective and strictly better on at least one (smaller-is-better
// vectors).
func dominates(a, b []float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// frontier returns the indices of points not dominated by any other
// feasible point.
func frontier(points []domain.ParetoPoint, objectives []domain.ParetoObjectiveName) []int {
	vectors := make([][]float64, len(points))
	for i, p := range points {
		vectors[i] = internalVector(p, objectives)
	}
	var out []int
	for i := range points {
		dominated := false
		for j := range points {
			if i == j {
				continue
			}
			if dominates(vectors[j], vectors[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, i)
		}
	}
	return out
}

// computeSpread returns max-min per objective over the frontier, using
// the raw (display-sign) objective values.
func computeSpread(frontierPoints []domain.ParetoPoint, objectives []domain.ParetoObjectiveName) map[string]float64 {
	spread := map[string]float64{}
	for _, o := range objectives {
		var values []float64
		for _, p := range frontierPoints {
			values = append(values, p.ObjectiveValues[string(o)])
		}
		if len(values) == 0 {
			spread[string(o)] = 0
			continue
		}
		sorted := statutil.Sorted(values)
		spread[string(o)] = statutil.Round2(sorted[len(sorted)-1] - sorted[0])
	}
	return spread
}

// computeTradeOffs computes the pairwise correlation/ratio summary for
// every objective pair across the frontier.
func computeTradeOffs(frontierPoints []domain.ParetoPoint, objectives []domain.ParetoObjectiveName) []domain.ParetoTradeOff {
	var out []domain.ParetoTradeOff
	for i := 0; i < len(objectives); i++ {
		for j := i + 1; j < len(objectives); j++ {
			a := seriesFor(frontierPoints, objectives[i])
			b := seriesFor(frontierPoints, objectives[j])
			corr := statutil.PearsonCorrelation(a, b)
			rangeA := rangeOf(a)
			rangeB := rangeOf(b)
			var ratio float64
			if rangeA != 0 {
				ratio = rangeB / rangeA
			}
			relationship := "independent"
			switch {
			case corr < -0.3:
				relationship = "conflict"
			case corr > 0.3:
				relationship = "synergy"
			}
			out = append(out, domain.ParetoTradeOff{
				ObjectiveA:    string(objectives[i]),
				ObjectiveB:    string(objectives[j]),
				Correlation:   statutil.Round3(corr),
				TradeOffRatio: statutil.Round3(ratio),
				Relationship:  relationship,
			})
		}
	}
	return out
}

func seriesFor(points []domain.ParetoPoint, o domain.ParetoObjectiveName) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.ObjectiveValues[string(o)]
	}
	return out
}

func rangeOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := statutil.Sorted(values)
	return sorted[len(sorted)-1] - sorted[0]
}
