package rl

import (
	"context"
	"fmt"
)

// Policy selects actions from observation vectors and learns from the
// rewards the environment reports.
type Policy interface {
	// NextAction picks one of actions [0,n) for the given observation.
	NextAction(step int, obs []uint8, n int) int
	Update(step int, obs []uint8, action int, next []uint8, reward float64, done bool)
	// EndEpisode is called once per finished episode with its return.
	EndEpisode(episode int, ret float64)
	Reset()
}

type AgentConfig struct {
	// TotalTimesteps is the training budget; episodes run until it is spent.
	TotalTimesteps int
	// Horizon truncates episodes the environment does not end itself.
	Horizon     int
	Policy      Policy
	Environment Environment
	// Monitor, when set, records every finished episode.
	Monitor *Monitor
	Verbose bool
}

// Agent runs the episode loop for a single policy/environment pair.
type Agent struct {
	config  *AgentConfig
	returns []float64
}

func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:  config,
		returns: make([]float64, 0),
	}
}

// Run drives episodes until the timestep budget is exhausted. Cancellation
// is honored between episodes.
func (a *Agent) Run(ctx context.Context) error {
	executed := 0
	episode := 0
	for executed < a.config.TotalTimesteps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		steps, ret, err := a.runEpisode(episode)
		if err != nil {
			return fmt.Errorf("episode %d: %w", episode, err)
		}
		executed += steps
		episode += 1
		a.returns = append(a.returns, ret)

		if a.config.Monitor != nil {
			if err := a.config.Monitor.RecordEpisode(ret, steps); err != nil {
				return fmt.Errorf("episode %d: %w", episode-1, err)
			}
		}
		if a.config.Verbose {
			fmt.Printf("\rEps:%6d || TSteps:%8d/%d || Return:%8.2f", episode, executed, a.config.TotalTimesteps, ret)
		}
	}
	if a.config.Verbose {
		fmt.Println("")
	}
	return nil
}

func (a *Agent) runEpisode(episode int) (int, float64, error) {
	obs, err := a.config.Environment.Reset()
	if err != nil {
		return 0, 0, err
	}

	ret := 0.0
	steps := 0
	n := a.config.Environment.ActionCount()

	for steps < a.config.Horizon {
		action := a.config.Policy.NextAction(steps, obs, n)
		res, err := a.config.Environment.Step(action)
		if err != nil {
			return steps, ret, err
		}
		done := res.Terminated || res.Truncated
		a.config.Policy.Update(steps, obs, action, res.Obs, res.Reward, done)

		ret += res.Reward
		steps += 1
		obs = res.Obs
		if done {
			break
		}
	}
	a.config.Policy.EndEpisode(episode, ret)
	return steps, ret, nil
}

// Returns are the per-episode returns collected so far.
func (a *Agent) Returns() []float64 {
	return a.returns
}

func (a *Agent) Episodes() int {
	return len(a.returns)
}
