// Package rl drives reinforcement-learning runs against hook-configured
// coverage-gridworld environments: the environment contract and registry,
// the episode loop, per-episode CSV monitoring, and the experiment
// comparison pipeline.
package rl

import (
	"coveragerl/gridenv"
	"coveragerl/hooks"
)

// StepResult is what one environment step produces.
type StepResult struct {
	Obs        []uint8
	Reward     float64
	Terminated bool
	Truncated  bool
	Info       *gridenv.StepInfo
}

// Environment is the surface the episode loop drives. Engines own the grid,
// movement rules, enemy behavior and termination; they compute observations
// and rewards through the hooks instance they were constructed with.
type Environment interface {
	// Reset starts a new episode and returns its first observation.
	Reset() ([]uint8, error)
	Step(action int) (StepResult, error)
	// ActionCount is the size of the discrete action space.
	ActionCount() int
	Space() hooks.Space
	Close() error
}
