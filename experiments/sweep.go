package experiments

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"coveragerl/hooks"
	"coveragerl/policies"
	"coveragerl/rl"
)

const rollingWindow = 10

// Sweep trains one softmax Q policy per observation/reward combination on
// the same environment, logging each run to <logs>/<obs>_<reward>/ and
// saving a checkpoint per combination.
func Sweep(ctx context.Context, envName string) error {
	c := rl.NewComparison(&rl.ComparisonConfig{
		TotalTimesteps: timesteps,
		Horizon:        horizon,
		LogDir:         logsDir,
		EnvID:          envName,
	})
	c.AddAnalysis("Returns", rl.ReturnAnalyzer(), rl.LearningCurveComparator(filepath.Join(logsDir, "learning_curves.png"), rollingWindow))

	trained := make(map[string]*policies.SoftmaxQ)
	for _, cfg := range allCombos() {
		h, err := hooks.New(cfg)
		if err != nil {
			return err
		}
		env, err := rl.Make(envName, h)
		if err != nil {
			return err
		}
		policy := policies.NewSoftmaxQ(alpha, gamma, temperature, seed)
		trained[cfg.Name()] = policy
		c.AddExperiment(rl.NewExperiment(cfg.Name(), policy, env))
	}

	if err := c.Run(ctx); err != nil {
		return err
	}

	for name, policy := range trained {
		ckpt := filepath.Join(logsDir, name+"_policy.json")
		if err := policy.SaveCheckpoint(ckpt); err != nil {
			return fmt.Errorf("save %s: %w", ckpt, err)
		}
	}
	return nil
}

func SweepCommand() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train every observation/reward mode combination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Sweep(cmd.Context(), envName)
		},
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "sneaky_enemies", "Registered environment name")
	return cmd
}
