// Package statutil holds the small numeric helpers shared across the
// Layer-2 meta-engines: percentiles, risk statistics, and correlation.
// None of this is solver logic — it is plain descriptive statistics.
package statutil

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0..100) of sorted using linear
// interpolation between closest ranks. sorted must already be ascending
// and non-empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Sorted returns a sorted copy of values.
func Sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Skewness returns the biased (population) skewness coefficient.
func Skewness(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := Mean(values)
	sd := StdDev(values)
	if sd == 0 {
		return 0
	}
	var sumCube float64
	for _, v := range values {
		d := (v - m) / sd
		sumCube += d * d * d
	}
	return sumCube / float64(n)
}

// CoefficientOfVariation returns std/|mean|, or 0 when mean is 0.
func CoefficientOfVariation(values []float64) float64 {
	m := Mean(values)
	if m == 0 {
		return 0
	}
	return StdDev(values) / math.Abs(m)
}

// VaR returns the p-th percentile of the (unsorted) outcome distribution.
func VaR(values []float64, p float64) float64 {
	return Percentile(Sorted(values), p)
}

// CVaR returns the mean of the worst (1-p/100) fraction of outcomes, where
// "worst" means largest (cost-style objectives: smaller is better).
// Tail size is ceil(N*(1-p/100)), at least 1.
func CVaR(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := Sorted(values)
	tailSize := int(math.Ceil(float64(n) * (1 - p/100)))
	if tailSize < 1 {
		tailSize = 1
	}
	if tailSize > n {
		tailSize = n
	}
	tail := sorted[n-tailSize:]
	return Mean(tail)
}

// DistributionSummary is the standard bundle of descriptive statistics used
// by StochasticOptimizer and reused anywhere a set of scenario objectives
// needs summarizing.
type DistributionSummary struct {
	Mean                  float64            `json:"mean"`
	Median                float64            `json:"median"`
	StdDev                float64            `json:"std_dev"`
	Min                    float64            `json:"min"`
	Max                    float64            `json:"max"`
	Percentiles            map[string]float64 `json:"percentiles"`
	Skewness               float64            `json:"skewness"`
	CoefficientOfVariation float64            `json:"coefficient_of_variation"`
}

// SummarizeDistribution computes DistributionSummary over values.
func SummarizeDistribution(values []float64) DistributionSummary {
	if len(values) == 0 {
		return DistributionSummary{}
	}
	sorted := Sorted(values)
	pcts := map[string]float64{}
	for _, p := range []float64{5, 10, 25, 75, 90, 95, 99} {
		pcts[pctKey(p)] = Percentile(sorted, p)
	}
	return DistributionSummary{
		Mean:                   Mean(values),
		Median:                 Percentile(sorted, 50),
		StdDev:                 StdDev(values),
		Min:                    sorted[0],
		Max:                    sorted[len(sorted)-1],
		Percentiles:            pcts,
		Skewness:               Skewness(values),
		CoefficientOfVariation: CoefficientOfVariation(values),
	}
}

func pctKey(p float64) string {
	switch p {
	case 5:
		return "p5"
	case 10:
		return "p10"
	case 25:
		return "p25"
	case 75:
		return "p75"
	case 90:
		return "p90"
	case 95:
		return "p95"
	case 99:
		return "p99"
	}
	return "p"
}

// PearsonCorrelation returns the Pearson correlation coefficient between a
// and b, or 0 if fewer than 2 points or either series has zero variance.
func PearsonCorrelation(a, b []float64) float64 {
	n := len(a)
	if n < 2 || n != len(b) {
		return 0
	}
	ma, mb := Mean(a), Mean(b)
	var cov, va, vb float64
	for i := 0; i < n; i++ {
		da := a[i] - ma
		db := b[i] - mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 0
	}
	return cov / math.Sqrt(va*vb)
}

// LinearRegression fits y = slope*x + intercept over indices 0..n-1 using
// ordinary least squares.
func LinearRegression(y []float64) (slope, intercept float64) {
	n := len(y)
	if n < 2 {
		return 0, Mean(y)
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0, Mean(y)
	}
	slope = (fn*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / fn
	return slope, intercept
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places, used for reported ratios and shape
// statistics (trend strength, correlation, skewness, CV).
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
