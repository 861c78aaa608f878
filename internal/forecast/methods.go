// Package forecast implements Forecaster: four time-series
// methods sharing a common prediction-interval and trend-classification
// tail.
package forecast

import (
	"math"

	"github.com/opsintel/opsintel-mcp/internal/statutil"
)

var alphaGrid = func() []float64 {
	grid := make([]float64, 0, 19)
	for a := 0.05; a <= 0.951; a += 0.05 {
		grid = append(grid, math.Round(a*100)/100)
	}
	return grid
}()

// movingAverage returns the mean of the last min(5, n) values.
func movingAverage(values []float64) float64 {
	n := len(values)
	k := 5
	if n < k {
		k = n
	}
	return statutil.Mean(values[n-k:])
}

// exponentialSmoothing returns the final smoothed state, the one-step
// residual series, and the alpha used (auto-fit via grid search when req
// omits one).
func exponentialSmoothing(values []float64, alpha *float64) (forecastValue float64, residuals []float64, alphaUsed float64) {
	run := func(a float64) (float64, []float64) {
		s := values[0]
		var res []float64
		for t := 1; t < len(values); t++ {
			res = append(res, values[t]-s)
			s = a*values[t] + (1-a)*s
		}
		return s, res
	}
	if alpha != nil {
		s, res := run(*alpha)
		return s, res, *alpha
	}
	bestAlpha := alphaGrid[0]
	bestSSE := math.Inf(1)
	var bestRes []float64
	var bestState float64
	for _, a := range alphaGrid {
		s, res := run(a)
		var sse float64
		for _, r := range res {
			sse += r * r
		}
		if sse < bestSSE {
			bestSSE = sse
			bestAlpha = a
			bestRes = res
			bestState = s
		}
	}
	return bestState, bestRes, bestAlpha
}

// linearTrend forecasts at index n-1+h using an OLS fit over 0..n-1.
func linearTrend(values []float64, h int) float64 {
	slope, intercept := statutil.LinearRegression(values)
	x := float64(len(values)-1+h)
	return slope*x + intercept
}

// seasonalNaive forecasts using the same-phase observation `period` steps
// back, or the last value when the series is shorter than one period.
func seasonalNaive(values []float64, period, h int) float64 {
	n := len(values)
	if period < 1 || period > n {
		return values[n-1]
	}
	idx := n - period + ((h - 1) % period)
	if idx < 0 {
		idx += period
	}
	return values[idx]
}
