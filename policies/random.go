// Package policies holds the tabular learners the experiment drivers train:
// a uniform random baseline and a softmax Q policy with JSON checkpointing.
package policies

import (
	"golang.org/x/exp/rand"

	"coveragerl/rl"
)

// Random picks actions uniformly; the exploration baseline.
type Random struct {
	rand *rand.Rand
}

var _ rl.Policy = &Random{}

func NewRandom(seed int64) *Random {
	return &Random{
		rand: rand.New(rand.NewSource(uint64(seed))),
	}
}

func (r *Random) NextAction(step int, obs []uint8, n int) int {
	return r.rand.Intn(n)
}

func (r *Random) Update(_ int, _ []uint8, _ int, _ []uint8, _ float64, _ bool) {}

func (r *Random) EndEpisode(_ int, _ float64) {}

func (r *Random) Reset() {}
