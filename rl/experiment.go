package rl

import (
	"context"
	"fmt"
	"path/filepath"
)

// Experiment pairs a named policy with an environment instance.
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
}

func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
	}
}

// Generic dataset produced by an analyzer from the episode returns
type DataSet interface{}

// Analyzer reduces one experiment's per-episode returns to a DataSet.
type Analyzer func(name string, returns []float64) DataSet

// Comparator renders the datasets of all experiments side by side.
type Comparator func(names []string, datasets []DataSet)

type ComparisonConfig struct {
	TotalTimesteps int
	Horizon        int
	// LogDir, when set, gets a <LogDir>/<experiment>/monitor.csv per run.
	LogDir string
	EnvID  string
}

// Comparison runs experiments under a shared budget and feeds their returns
// through the registered analyzers and comparators.
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

func NewComparison(config *ComparisonConfig) *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator pair to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) error {
	datasets := make(map[string][]DataSet)
	for name := range c.analyzers {
		datasets[name] = make([]DataSet, len(c.Experiments))
	}

	names := make([]string, len(c.Experiments))
	for i, e := range c.Experiments {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var monitor *Monitor
		if c.cConfig.LogDir != "" {
			var err error
			monitor, err = NewMonitor(filepath.Join(c.cConfig.LogDir, e.Name), c.cConfig.EnvID)
			if err != nil {
				return fmt.Errorf("experiment %s: %w", e.Name, err)
			}
		}

		fmt.Printf("Experiment %s\n", e.Name)
		agent := NewAgent(&AgentConfig{
			TotalTimesteps: c.cConfig.TotalTimesteps,
			Horizon:        c.cConfig.Horizon,
			Policy:         e.policy,
			Environment:    e.environment,
			Monitor:        monitor,
			Verbose:        true,
		})
		runErr := agent.Run(ctx)
		if monitor != nil {
			if err := monitor.Close(); err != nil && runErr == nil {
				runErr = err
			}
		}
		e.environment.Close()
		if runErr != nil {
			return fmt.Errorf("experiment %s: %w", e.Name, runErr)
		}

		for name, a := range c.analyzers {
			datasets[name][i] = a(e.Name, agent.Returns())
		}
		names[i] = e.Name
	}

	for name, comp := range c.comparators {
		comp(names, datasets[name])
	}
	return nil
}
