package forecast

import (
	"math"

	"github.com/opsintel/opsintel-mcp/internal/domain"
	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

// Run produces a ForecastResult
func Run(req *domain.ForecastRequest) (*domain.ForecastResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	values := make([]float64, len(req.Series))
	for i, p := range req.Series {
		values[i] = p.Value
	}

	var point, alphaUsed float64
	var residuals []float64
	switch req.Method {
	case domain.ForecastMovingAverage:
		point = movingAverage(values)
	case domain.ForecastExponentialSmoothing:
		point, residuals, alphaUsed = exponentialSmoothing(values, req.Alpha)
	case domain.ForecastLinearTrend:
		point = linearTrend(values, req.Horizon)
	case domain.ForecastSeasonalNaive:
		point = seasonalNaive(values, req.SeasonalPeriod, req.Horizon)
	}

	var sigmaRes float64
	if req.Method == domain.ForecastExponentialSmoothing {
		sigmaRes = statutil.StdDev(residuals)
	} else {
		sigmaRes = statutil.StdDev(values)
	}

	z := zFor(req.Confidence)
	margin := z * sigmaRes * math.Sqrt(1+0.1*float64(req.Horizon))
	lower := point - margin
	if lower < 0 {
		lower = 0
	}
	upper := point + margin

	trend, strength := classifyTrend(values)

	result := &domain.ForecastResult{
		Mean:          statutil.Round2(statutil.Mean(values)),
		Std:           statutil.Round2(statutil.StdDev(values)),
		Point:         statutil.Round2(point),
		Lower:         statutil.Round2(lower),
		Upper:         statutil.Round2(upper),
		Confidence:    req.Confidence,
		Trend:         trend,
		TrendStrength: statutil.Round3(strength),
		Horizon:       req.Horizon,
	}
	if req.Method == domain.ForecastExponentialSmoothing {
		result.AlphaUsed = alphaUsed
	}
	return result, nil
}
