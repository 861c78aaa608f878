package scenario

import (
	"math"
	"math/rand"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

// StochasticScenarios draws numScenarios independent samples from the
// request-seeded PRNG, one value per parameter per scenario.
func StochasticScenarios(params []domain.StochasticParameter, numScenarios int, seed int64) []map[string]float64 {
	rng := rand.New(rand.NewSource(seed))
	scenarios := make([]map[string]float64, 0, numScenarios)
	for i := 0; i < numScenarios; i++ {
		s := make(map[string]float64, len(params))
		for _, p := range params {
			s[p.Path] = sampleOne(p, rng)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios
}

func sampleOne(p domain.StochasticParameter, rng *rand.Rand) float64 {
	switch p.Distribution {
	case domain.DistUniform:
		return p.Min + rng.Float64()*(p.Max-p.Min)
	case domain.DistTriangular:
		return sampleTriangular(p.Min, p.Mode, p.Max, rng)
	case domain.DistLogNormal:
		return sampleLogNormal(p.Mean, p.Std, rng)
	default: // DistNormal
		v := p.Mean + rng.NormFloat64()*p.Std
		if v < 0 {
			v = 0
		}
		return v
	}
}

// sampleTriangular uses the standard inverse-CDF construction for a
// triangular distribution over [min, max] with mode m.
func sampleTriangular(min, mode, max float64, rng *rand.Rand) float64 {
	u := rng.Float64()
	c := (mode - min) / (max - min)
	if u < c {
		return min + math.Sqrt(u*(max-min)*(mode-min))
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-mode))
}

// sampleLogNormal draws from a log-normal distribution parameterized by
// the desired arithmetic mean and std.
func sampleLogNormal(mean, std float64, rng *rand.Rand) float64 {
	if mean <= 0 {
		return 0
	}
	muLog := math.Log(mean * mean / math.Sqrt(std*std+mean*mean))
	sigmaLog := math.Sqrt(math.Log(1 + (std*std)/(mean*mean)))
	return math.Exp(muLog + sigmaLog*rng.NormFloat64())
}
