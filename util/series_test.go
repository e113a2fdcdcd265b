package util

import (
	"math"
	"testing"
)

func TestRollingMean(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	got := RollingMean(series, 3)
	expected := []float64{1, 1.5, 2, 3, 4}
	if len(got) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(got))
	}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Errorf("index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestRollingMeanWindowOne(t *testing.T) {
	series := []float64{2, -4, 6}
	got := RollingMean(series, 1)
	for i := range series {
		if got[i] != series[i] {
			t.Errorf("index %d: expected %v, got %v", i, series[i], got[i])
		}
	}
}

func TestRollingMeanEmpty(t *testing.T) {
	if got := RollingMean(nil, 10); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}
