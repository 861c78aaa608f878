package statutil

import "testing"

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	if got := Percentile(sorted, 0); got != 10 {
		t.Errorf("p0 = %v, want 10", got)
	}
	if got := Percentile(sorted, 100); got != 40 {
		t.Errorf("p100 = %v, want 40", got)
	}
	if got := Percentile(sorted, 50); got != 25 {
		t.Errorf("p50 = %v, want 25", got)
	}
}

func TestCVaRIsAtLeastVaR(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	for _, p := range []float64{90, 95, 99} {
		v := VaR(values, p)
		c := CVaR(values, p)
		if c < v {
			t.Errorf("CVaR_%v (%v) < VaR_%v (%v)", p, c, p, v)
		}
	}
}

func TestCVaROrdering(t *testing.T) {
	values := []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 1000}
	c90 := CVaR(values, 90)
	c95 := CVaR(values, 95)
	c99 := CVaR(values, 99)
	if !(c90 <= c95 && c95 <= c99) {
		t.Errorf("expected CVaR_90 <= CVaR_95 <= CVaR_99, got %v %v %v", c90, c95, c99)
	}
}

func TestPearsonCorrelationDegenerate(t *testing.T) {
	if got := PearsonCorrelation([]float64{1}, []float64{2}); got != 0 {
		t.Errorf("expected 0 for single point, got %v", got)
	}
	if got := PearsonCorrelation([]float64{1, 1, 1}, []float64{2, 3, 4}); got != 0 {
		t.Errorf("expected 0 for zero-variance series, got %v", got)
	}
}

func TestPearsonCorrelationPerfectPositive(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}
	got := PearsonCorrelation(a, b)
	if got < 0.999 {
		t.Errorf("expected near 1.0 correlation, got %v", got)
	}
}

func TestSummarizeDistributionOrdering(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	s := SummarizeDistribution(values)
	if s.Min > s.Percentiles["p5"] || s.Percentiles["p95"] > s.Max {
		t.Errorf("percentile bounds out of range: %+v", s)
	}
}
