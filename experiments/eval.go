package experiments

import (
	"context"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"coveragerl/hooks"
	"coveragerl/policies"
	"coveragerl/rl"
)

// Eval loads a policy checkpoint and runs it greedily for a number of
// episodes, printing per-episode returns and their mean.
func Eval(ctx context.Context, envName, checkpoint, obsName, rewardName string, episodes int) error {
	obsMode, err := hooks.ParseObsMode(obsName)
	if err != nil {
		return err
	}
	rewardMode, err := hooks.ParseRewardMode(rewardName)
	if err != nil {
		return err
	}

	h, err := hooks.New(hooks.Config{Obs: obsMode, Reward: rewardMode})
	if err != nil {
		return err
	}
	env, err := rl.Make(envName, h)
	if err != nil {
		return err
	}
	defer env.Close()

	policy, err := policies.LoadCheckpoint(checkpoint, seed)
	if err != nil {
		return err
	}
	policy.SetGreedy(true)

	returns := make([]float64, 0, episodes)
	for ep := 0; ep < episodes; ep++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		obs, err := env.Reset()
		if err != nil {
			return fmt.Errorf("episode %d: %w", ep+1, err)
		}
		total := 0.0
		steps := 0
		for steps < horizon {
			action := policy.NextAction(steps, obs, env.ActionCount())
			res, err := env.Step(action)
			if err != nil {
				return fmt.Errorf("episode %d: %w", ep+1, err)
			}
			total += res.Reward
			steps += 1
			obs = res.Obs
			if res.Terminated || res.Truncated {
				break
			}
		}
		returns = append(returns, total)
		fmt.Printf("Episode %d finished with total reward: %s, steps: %d\n", ep+1, aurora.Green(fmt.Sprintf("%.2f", total)), steps)
	}

	fmt.Printf("Mean return over %d episodes: %s\n", episodes, aurora.Bold(fmt.Sprintf("%.2f", stat.Mean(returns, nil))))
	return nil
}

func EvalCommand() *cobra.Command {
	var envName string
	var checkpoint string
	var obsName string
	var rewardName string
	var episodes int

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run a saved policy greedily and report episode returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Eval(cmd.Context(), envName, checkpoint, obsName, rewardName, episodes)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "sneaky_enemies", "Registered environment name")
	cmd.PersistentFlags().StringVar(&checkpoint, "checkpoint", "", "Policy checkpoint file to load")
	cmd.PersistentFlags().StringVar(&obsName, "obs", "local", "Observation mode (global or local)")
	cmd.PersistentFlags().StringVar(&rewardName, "reward", "proximity", "Reward mode (basic, time_pressure or proximity)")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", 3, "Number of evaluation episodes")
	cmd.MarkPersistentFlagRequired("checkpoint")
	return cmd
}
