package policies

import (
	"encoding/hex"
	"math"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"coveragerl/rl"
)

// SoftmaxQ is a tabular Q policy over observation vectors. Actions are
// sampled from a softmax over the state's Q values during training; greedy
// mode takes the argmax instead (used for evaluation).
type SoftmaxQ struct {
	qTable      *QTable
	alpha       float64
	gamma       float64
	temperature float64
	greedy      bool
	src         rand.Source
	rand        *rand.Rand
}

var _ rl.Policy = &SoftmaxQ{}

func NewSoftmaxQ(alpha, gamma, temperature float64, seed int64) *SoftmaxQ {
	if temperature <= 0 {
		temperature = 1
	}
	src := rand.NewSource(uint64(seed))
	return &SoftmaxQ{
		qTable:      NewQTable(),
		alpha:       alpha,
		gamma:       gamma,
		temperature: temperature,
		src:         src,
		rand:        rand.New(src),
	}
}

// SetGreedy switches between softmax sampling and argmax selection.
func (s *SoftmaxQ) SetGreedy(greedy bool) {
	s.greedy = greedy
}

// Observation vectors carry arbitrary bytes; hex keeps the table keys safe
// to serialize as JSON.
func stateHash(obs []uint8) string {
	return hex.EncodeToString(obs)
}

func actionHash(action int) string {
	return strconv.Itoa(action)
}

func (s *SoftmaxQ) NextAction(step int, obs []uint8, n int) int {
	state := stateHash(obs)

	if s.greedy {
		best, bestVal := 0, math.Inf(-1)
		for a := 0; a < n; a++ {
			if val := s.qTable.Get(state, actionHash(a), 0); val > bestVal {
				best, bestVal = a, val
			}
		}
		return best
	}

	sum := float64(0)
	weights := make([]float64, n)
	vals := make([]float64, n)
	for a := 0; a < n; a++ {
		val := s.qTable.Get(state, actionHash(a), 0)
		exp := math.Exp(val / s.temperature)
		vals[a] = exp
		sum += exp
	}
	for a, v := range vals {
		weights[a] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return s.rand.Intn(n)
	}
	return i
}

func (s *SoftmaxQ) Update(step int, obs []uint8, action int, next []uint8, reward float64, done bool) {
	state := stateHash(obs)
	actionKey := actionHash(action)

	curVal := s.qTable.Get(state, actionKey, 0)
	target := reward
	if !done {
		target += s.gamma * s.qTable.Max(stateHash(next), 0)
	}
	s.qTable.Set(state, actionKey, (1-s.alpha)*curVal+s.alpha*target)
}

func (s *SoftmaxQ) EndEpisode(_ int, _ float64) {}

func (s *SoftmaxQ) Reset() {
	s.qTable = NewQTable()
}

// States is the number of distinct observations the policy has values for.
func (s *SoftmaxQ) States() int {
	return s.qTable.States()
}
