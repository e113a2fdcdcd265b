package hooks

import (
	"math"
	"testing"

	"coveragerl/gridenv"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBasicShaper(t *testing.T) {
	cases := []struct {
		covered  bool
		gameOver bool
		expected float64
	}{
		{false, false, 0.0},
		{true, false, 1.0},
		{false, true, -1.0},
		// both contributions apply, they are not mutually exclusive
		{true, true, 0.0},
	}
	for _, c := range cases {
		info := &gridenv.StepInfo{NewCellCovered: c.covered, GameOver: c.gameOver}
		if got := (BasicShaper{}).Shape(info); !almostEqual(got, c.expected) {
			t.Errorf("covered=%v gameOver=%v: expected %v, got %v", c.covered, c.gameOver, c.expected, got)
		}
	}
}

func TestTimePressureShaper(t *testing.T) {
	s := NewTimePressureShaper()

	// first call: no prior position, just the step cost
	if got := s.Shape(&gridenv.StepInfo{AgentPos: 12}); !almostEqual(got, -0.01) {
		t.Fatalf("first call: expected -0.01, got %v", got)
	}
	// same position again: step cost plus stuck penalty
	if got := s.Shape(&gridenv.StepInfo{AgentPos: 12}); !almostEqual(got, -0.06) {
		t.Fatalf("stuck call: expected -0.06, got %v", got)
	}
	// movement clears the stuck penalty
	if got := s.Shape(&gridenv.StepInfo{AgentPos: 13}); !almostEqual(got, -0.01) {
		t.Fatalf("moved call: expected -0.01, got %v", got)
	}

	if got := s.Shape(&gridenv.StepInfo{AgentPos: 14, NewCellCovered: true, GameOver: true}); !almostEqual(got, 1.0-0.01-5.0) {
		t.Fatalf("covered+caught: expected %v, got %v", 1.0-0.01-5.0, got)
	}

	// Reset drops the carried position; next call draws no stuck penalty
	s.Reset()
	if got := s.Shape(&gridenv.StepInfo{AgentPos: 14}); !almostEqual(got, -0.01) {
		t.Fatalf("after reset: expected -0.01, got %v", got)
	}
}

func TestProximityShaper(t *testing.T) {
	// agent at row 4 col 2; enemies at Manhattan distance 1 and 5
	info := &gridenv.StepInfo{
		AgentPos:       42,
		NewCellCovered: true,
		Enemies: []gridenv.EnemyPos{
			{X: 2, Y: 5},
			{X: 5, Y: 6},
		},
	}
	if got := (ProximityShaper{}).Shape(info); !almostEqual(got, 1.0-0.01-0.1) {
		t.Fatalf("expected %v, got %v", 1.0-0.01-0.1, got)
	}
}

func TestProximityShaperAccumulates(t *testing.T) {
	// three enemies inside the range, penalty applies once per enemy
	info := &gridenv.StepInfo{
		AgentPos: 42,
		Enemies: []gridenv.EnemyPos{
			{X: 2, Y: 4}, // distance 0
			{X: 3, Y: 4}, // distance 1
			{X: 2, Y: 6}, // distance 2
			{X: 5, Y: 4}, // distance 3, outside
		},
	}
	if got := (ProximityShaper{}).Shape(info); !almostEqual(got, -0.01-0.3) {
		t.Fatalf("expected %v, got %v", -0.01-0.3, got)
	}
}

func TestProximityShaperCaught(t *testing.T) {
	info := &gridenv.StepInfo{AgentPos: 0, GameOver: true}
	if got := (ProximityShaper{}).Shape(info); !almostEqual(got, -0.01-5.0) {
		t.Fatalf("expected %v, got %v", -0.01-5.0, got)
	}
}
