package gridenv

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a malformed StepInfo. Hooks reject these instead of
// coercing them into a zero reward, which would corrupt the training signal
// undetectably.
var ErrInvalidInput = errors.New("invalid step info")

// EnemyPos is the grid coordinate of one enemy.
type EnemyPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StepInfo is the per-step event record the environment engine hands to the
// reward hook. Produced fresh each step, read-only to the hooks.
type StepInfo struct {
	// AgentPos is the flattened row-major index into the grid, in [0,99].
	AgentPos       int
	StepsRemaining int
	CellsRemaining int
	NewCellCovered bool
	// GameOver is true iff the agent was detected this step.
	GameOver bool
	Enemies  []EnemyPos
}

func (s *StepInfo) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidInput)
	}
	if s.AgentPos < 0 || s.AgentPos >= Cells {
		return fmt.Errorf("%w: agent position %d outside [0,%d]", ErrInvalidInput, s.AgentPos, Cells-1)
	}
	if s.StepsRemaining < 0 {
		return fmt.Errorf("%w: negative steps remaining %d", ErrInvalidInput, s.StepsRemaining)
	}
	if s.CellsRemaining < 0 {
		return fmt.Errorf("%w: negative cells remaining %d", ErrInvalidInput, s.CellsRemaining)
	}
	for i, e := range s.Enemies {
		if e.X < 0 || e.X >= Cols || e.Y < 0 || e.Y >= Rows {
			return fmt.Errorf("%w: enemy %d at (%d,%d) outside the grid", ErrInvalidInput, i, e.X, e.Y)
		}
	}
	return nil
}

// AgentRow and AgentCol decompose the flattened agent position.
func (s *StepInfo) AgentRow() int { return s.AgentPos / Cols }

func (s *StepInfo) AgentCol() int { return s.AgentPos % Cols }

// Clone returns a snapshot the caller may retain past the step.
func (s *StepInfo) Clone() *StepInfo {
	c := *s
	c.Enemies = append([]EnemyPos(nil), s.Enemies...)
	return &c
}
