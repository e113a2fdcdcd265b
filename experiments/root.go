// Package experiments holds the command line drivers: training sweeps over
// observation/reward mode combinations, curriculum training, checkpoint
// evaluation, and plotting of the recorded episode logs.
package experiments

import (
	"github.com/spf13/cobra"

	"coveragerl/hooks"
)

var (
	timesteps   int
	horizon     int
	logsDir     string
	seed        int64
	alpha       float64
	gamma       float64
	temperature float64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "coveragerl",
		Short: "Train, evaluate and plot coverage-gridworld experiments",
	}
	rootCommand.PersistentFlags().IntVarP(&timesteps, "timesteps", "t", 50000, "Total environment steps per training run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 200, "Maximum steps per episode")
	rootCommand.PersistentFlags().StringVar(&logsDir, "logs", "logs", "Directory for per-episode monitor logs")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 1, "Random seed for policies")
	rootCommand.PersistentFlags().Float64Var(&alpha, "alpha", 0.3, "Q learning rate")
	rootCommand.PersistentFlags().Float64Var(&gamma, "gamma", 0.95, "Discount factor")
	rootCommand.PersistentFlags().Float64Var(&temperature, "temperature", 1.0, "Softmax temperature")
	// adding the subcommands here
	rootCommand.AddCommand(SweepCommand())
	rootCommand.AddCommand(CurriculumCommand())
	rootCommand.AddCommand(EvalCommand())
	rootCommand.AddCommand(PlotCommand())
	rootCommand.AddCommand(ReportCommand())
	return rootCommand
}

// allCombos enumerates every observation/reward mode combination the sweep
// trains and the plotting commands look for.
func allCombos() []hooks.Config {
	obsModes := []hooks.ObsMode{hooks.ObsGlobal, hooks.ObsLocal}
	rewardModes := []hooks.RewardMode{hooks.RewardBasic, hooks.RewardTimePressure, hooks.RewardProximity}

	combos := make([]hooks.Config, 0, len(obsModes)*len(rewardModes))
	for _, o := range obsModes {
		for _, r := range rewardModes {
			combos = append(combos, hooks.Config{Obs: o, Reward: r})
		}
	}
	return combos
}
