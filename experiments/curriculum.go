package experiments

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"coveragerl/hooks"
	"coveragerl/policies"
	"coveragerl/rl"
)

type curriculumStage struct {
	Env       string
	Timesteps int
}

// Stage budgets grow with map difficulty; the policy carries over between
// stages through its checkpoint file.
var curriculumStages = []curriculumStage{
	{Env: "safe", Timesteps: 50000},
	{Env: "chokepoint", Timesteps: 70000},
	{Env: "sneaky_enemies", Timesteps: 100000},
}

// Curriculum trains local observation + proximity reward across the staged
// maps, loading each stage from the previous stage's checkpoint.
func Curriculum(ctx context.Context) error {
	cfg := hooks.Config{Obs: hooks.ObsLocal, Reward: hooks.RewardProximity}

	policy := policies.NewSoftmaxQ(alpha, gamma, temperature, seed)
	prevCheckpoint := ""
	lastCheckpoint := ""

	for i, stage := range curriculumStages {
		if prevCheckpoint != "" {
			var err error
			policy, err = policies.LoadCheckpoint(prevCheckpoint, seed)
			if err != nil {
				return fmt.Errorf("stage %d: %w", i+1, err)
			}
		}

		h, err := hooks.New(cfg)
		if err != nil {
			return err
		}
		env, err := rl.Make(stage.Env, h)
		if err != nil {
			return err
		}

		logDir := filepath.Join(logsDir, fmt.Sprintf("stage%d_%s", i+1, stage.Env))
		monitor, err := rl.NewMonitor(logDir, stage.Env)
		if err != nil {
			env.Close()
			return err
		}

		fmt.Printf("Stage %d: %s (%d timesteps)\n", i+1, stage.Env, stage.Timesteps)
		agent := rl.NewAgent(&rl.AgentConfig{
			TotalTimesteps: stage.Timesteps,
			Horizon:        horizon,
			Policy:         policy,
			Environment:    env,
			Monitor:        monitor,
			Verbose:        true,
		})
		runErr := agent.Run(ctx)
		monitor.Close()
		env.Close()
		if runErr != nil {
			return fmt.Errorf("stage %d (%s): %w", i+1, stage.Env, runErr)
		}

		ckpt := filepath.Join(logsDir, fmt.Sprintf("stage%d_%s_%s_policy.json", i+1, cfg.Name(), stage.Env))
		if err := policy.SaveCheckpoint(ckpt); err != nil {
			return fmt.Errorf("stage %d: %w", i+1, err)
		}
		prevCheckpoint = ckpt
		lastCheckpoint = ckpt
	}

	fmt.Printf("Training complete, final policy saved as %s\n", aurora.Green(lastCheckpoint))
	return nil
}

func CurriculumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curriculum",
		Short: "Train local observation + proximity reward across staged maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Curriculum(cmd.Context())
		},
	}
}
