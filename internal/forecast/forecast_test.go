package forecast

import (
	"testing"

	"github.com/opsintel/opsintel-mcp/internal/domain"
)

func series(values ...float64) []domain.ObservedPoint {
	out := make([]domain.ObservedPoint, len(values))
	for i, v := range values {
		out[i] = domain.ObservedPoint{Period: string(rune('a' + i)), Value: v}
	}
	return out
}

func TestMovingAverageUsesLastFive(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:     series(1, 2, 3, 4, 5, 6, 100),
		Method:     domain.ForecastMovingAverage,
		Horizon:    1,
		Confidence: 0.9,
	}
	res, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (3.0 + 4 + 5 + 6 + 100) / 5
	if res.Point != want {
		t.Errorf("got %v want %v", res.Point, want)
	}
}

func TestLinearTrendIncreasing(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:     series(100, 110, 120, 130, 140),
		Method:     domain.ForecastLinearTrend,
		Horizon:    2,
		Confidence: 0.95,
	}
	res, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Trend != domain.TrendIncreasing {
		t.Errorf("expected increasing trend, got %s", res.Trend)
	}
	if res.Point <= 140 {
		t.Errorf("expected forecast beyond last observed value, got %v", res.Point)
	}
}

func TestExponentialSmoothingAutoFitsAlpha(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:     series(5, 5, 5, 5, 5),
		Method:     domain.ForecastExponentialSmoothing,
		Horizon:    1,
		Confidence: 0.9,
	}
	res, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AlphaUsed <= 0 {
		t.Error("expected a positive auto-fit alpha")
	}
	if res.Point != 5 {
		t.Errorf("expected flat series to forecast 5, got %v", res.Point)
	}
}

func TestSeasonalNaiveFallsBackWhenPeriodExceedsSeries(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:         series(1, 2, 3),
		Method:         domain.ForecastSeasonalNaive,
		Horizon:        1,
		Confidence:     0.9,
		SeasonalPeriod: 12,
	}
	res, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Point != 3 {
		t.Errorf("expected fallback to last value 3, got %v", res.Point)
	}
}

func TestBoundsNeverNegative(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:     series(1, 1, 1, 50, 1),
		Method:     domain.ForecastMovingAverage,
		Horizon:    12,
		Confidence: 0.99,
	}
	res, err := Run(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Lower < 0 {
		t.Errorf("expected non-negative lower bound, got %v", res.Lower)
	}
}

func TestValidateRejectsShortSeries(t *testing.T) {
	req := &domain.ForecastRequest{
		Series:     series(1, 2),
		Method:     domain.ForecastMovingAverage,
		Horizon:    1,
		Confidence: 0.9,
	}
	if _, err := Run(req); err == nil {
		t.Fatal("expected validation error for series with fewer than 3 points")
	}
}
