// Package hooks holds the configurable policy layer the coverage-gridworld
// engine calls into on every step: observation encoders, reward shapers, and
// the per-instance dispatch between them.
//
// The engine's call contract supplies the step record only to the reward
// hook, so Hooks caches it for the observation hook. The cache and the
// reward shaper's carried state are instance fields, not process globals:
// each environment gets its own Hooks, and instances with different modes
// can coexist in one process. A single instance is still single-goroutine
// state.
package hooks

import (
	"errors"
	"fmt"

	"coveragerl/gridenv"
)

// ErrNoStepInfo is returned when local observation is requested before any
// step record has been cached. The encoder's output shape is part of the
// learner's input contract, so this fails instead of silently falling back
// to a differently-shaped vector.
var ErrNoStepInfo = errors.New("no step record cached")

var encoders = map[ObsMode]func() Encoder{
	ObsGlobal: func() Encoder { return GlobalEncoder{} },
	ObsLocal:  func() Encoder { return LocalEncoder{} },
}

var shapers = map[RewardMode]func() Shaper{
	RewardBasic:        func() Shaper { return BasicShaper{} },
	RewardTimePressure: func() Shaper { return NewTimePressureShaper() },
	RewardProximity:    func() Shaper { return ProximityShaper{} },
}

// Hooks is the pair of entry points an environment instance calls each step.
type Hooks struct {
	cfg      Config
	encoder  Encoder
	shaper   Shaper
	lastInfo *gridenv.StepInfo
}

func New(cfg Config) (*Hooks, error) {
	mkEncoder, ok := encoders[cfg.Obs]
	if !ok {
		return nil, fmt.Errorf("unknown observation mode %v", cfg.Obs)
	}
	mkShaper, ok := shapers[cfg.Reward]
	if !ok {
		return nil, fmt.Errorf("unknown reward mode %v", cfg.Reward)
	}
	return &Hooks{
		cfg:     cfg,
		encoder: mkEncoder(),
		shaper:  mkShaper(),
	}, nil
}

func (h *Hooks) Config() Config {
	return h.cfg
}

// ObservationSpace is called once at environment construction and fixes the
// shape the learner will see for the whole run.
func (h *Hooks) ObservationSpace() Space {
	return h.encoder.Space()
}

// CacheStepInfo validates and stores a step record for the next observation
// call. Reward does this implicitly; the engine calls it directly on reset,
// before the first observation of an episode, so local encoding always has
// a record to work from.
func (h *Hooks) CacheStepInfo(info *gridenv.StepInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}
	h.lastInfo = info.Clone()
	return nil
}

// Observation encodes the grid snapshot for the learner. The engine passes
// only the grid; local encoding reads the most recently cached step record
// and fails with ErrNoStepInfo when none exists.
func (h *Hooks) Observation(grid gridenv.Grid) ([]uint8, error) {
	return h.encoder.Encode(grid, h.lastInfo)
}

// Reward caches the step record for the observation hook and dispatches to
// the configured shaper. Malformed records propagate as errors; they are
// never coerced into a zero reward.
func (h *Hooks) Reward(info *gridenv.StepInfo) (float64, error) {
	if err := h.CacheStepInfo(info); err != nil {
		return 0, err
	}
	return h.shaper.Shape(h.lastInfo), nil
}

// Reset drops the cached step record and any state the shaper carries
// across steps. Engines call it when an episode resets.
func (h *Hooks) Reset() {
	h.lastInfo = nil
	h.shaper.Reset()
}
