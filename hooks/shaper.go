package hooks

import "coveragerl/gridenv"

const (
	coverReward      = 1.0
	basicPenalty     = 1.0
	stepPenalty      = 0.01
	caughtPenalty    = 5.0
	stuckPenalty     = 0.05
	proximityPenalty = 0.1
	proximityRange   = 3
)

// Shaper converts a per-step event record into a scalar reward. All terms
// are additive, so evaluation order never changes the result.
type Shaper interface {
	Shape(info *gridenv.StepInfo) float64
	// Reset clears any state carried across steps, at episode boundaries.
	Reset()
}

// BasicShaper rewards coverage and penalizes detection. Both terms apply
// independently when both events occur on the same step.
type BasicShaper struct{}

var _ Shaper = BasicShaper{}

func (BasicShaper) Shape(info *gridenv.StepInfo) float64 {
	rew := 0.0
	if info.NewCellCovered {
		rew += coverReward
	}
	if info.GameOver {
		rew -= basicPenalty
	}
	return rew
}

func (BasicShaper) Reset() {}

// TimePressureShaper adds a per-step cost and a stuck penalty when the agent
// occupies the same cell as on the previous step. The last position is
// updated unconditionally after every evaluation; the first call of an
// episode has no prior position and draws no stuck penalty.
type TimePressureShaper struct {
	lastPos int
	hasLast bool
}

var _ Shaper = &TimePressureShaper{}

func NewTimePressureShaper() *TimePressureShaper {
	return &TimePressureShaper{}
}

func (s *TimePressureShaper) Shape(info *gridenv.StepInfo) float64 {
	rew := 0.0
	if info.NewCellCovered {
		rew += coverReward
	}
	rew -= stepPenalty
	if info.GameOver {
		rew -= caughtPenalty
	}
	if s.hasLast && info.AgentPos == s.lastPos {
		rew -= stuckPenalty
	}
	s.lastPos = info.AgentPos
	s.hasLast = true
	return rew
}

func (s *TimePressureShaper) Reset() {
	s.hasLast = false
}

// ProximityShaper penalizes every enemy within Manhattan distance 2 of the
// agent, once per qualifying enemy, uncapped.
type ProximityShaper struct{}

var _ Shaper = ProximityShaper{}

func (ProximityShaper) Shape(info *gridenv.StepInfo) float64 {
	rew := 0.0
	if info.NewCellCovered {
		rew += coverReward
	}
	rew -= stepPenalty
	ax, ay := info.AgentCol(), info.AgentRow()
	for _, e := range info.Enemies {
		if abs(ax-e.X)+abs(ay-e.Y) < proximityRange {
			rew -= proximityPenalty
		}
	}
	if info.GameOver {
		rew -= caughtPenalty
	}
	return rew
}

func (ProximityShaper) Reset() {}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
