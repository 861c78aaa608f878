package forecast

import (
	"math"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// classifyTrend fits a linear slope over the full series and buckets it:
// a high coefficient of variation marks the series volatile regardless
// of slope; otherwise a near-zero normalized slope is stable, and sign
// picks increasing/decreasing.
func classifyTrend(values []float64) (domain.TrendClass, float64) {
	mean := statutil.Mean(values)
	std := statutil.StdDev(values)
	slope, _ := statutil.LinearRegression(values)

	var cv float64
	if mean != 0 {
		cv = std / math.Abs(mean)
	}
	var normalizedSlope float64
	if mean != 0 {
		normalizedSlope = math.Abs(slope) / math.Abs(mean)
	}

	if cv > 0.3 {
		return domain.TrendVolatile, normalizedSlope
	}
	if normalizedSlope < 0.02 {
		return domain.TrendStable, normalizedSlope
	}
	if slope > 0 {
		return domain.TrendIncreasing, normalizedSlope
	}
	return domain.TrendDecreasing, normalizedSlope
}

var zTable = []struct {
	confidence float64
	z          float64
}{
	{0.50, 0.674},
	{0.80, 1.282},
	{0.90, 1.645},
	{0.95, 1.96},
	{0.99, 2.576},
}

// zFor returns the z-score for the closest tabulated confidence level.
func zFor(confidence float64) float64 {
	best := zTable[0]
	bestDiff := math.Abs(confidence - best.confidence)
	for _, e := range zTable[1:] {
		d := math.Abs(confidence - e.confidence)
		if d < bestDiff {
			best, bestDiff = e, d
		}
	}
	return best.z
}
