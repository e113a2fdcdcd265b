package hooks

import (
	"fmt"

	"coveragerl/gridenv"
)

const (
	// GlobalLen is the full row-major channel-last flatten of the grid.
	GlobalLen = gridenv.Rows * gridenv.Cols * gridenv.Channels

	patchRadius = 2
	patchSize   = 2*patchRadius + 1

	// LocalLen is a 5x5 patch around the agent plus two scalars.
	LocalLen = patchSize*patchSize*gridenv.Channels + 2
)

// Space is the fixed shape and value range of the observation vectors an
// encoder produces. The learner sizes its input from this once, at
// environment construction.
type Space struct {
	Len  int
	Low  uint8
	High uint8
}

// Encoder converts a grid snapshot (and, for local encoding, the current
// step record) into a fixed-length observation vector.
type Encoder interface {
	Space() Space
	Encode(grid gridenv.Grid, info *gridenv.StepInfo) ([]uint8, error)
}

// GlobalEncoder flattens the whole grid. Lossless: the output is the
// row-major channel-last traversal and can be reshaped back.
type GlobalEncoder struct{}

var _ Encoder = GlobalEncoder{}

func (GlobalEncoder) Space() Space {
	return Space{Len: GlobalLen, Low: 0, High: 255}
}

func (GlobalEncoder) Encode(grid gridenv.Grid, _ *gridenv.StepInfo) ([]uint8, error) {
	out := make([]uint8, 0, GlobalLen)
	for r := 0; r < gridenv.Rows; r++ {
		for c := 0; c < gridenv.Cols; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				out = append(out, grid[r][c][ch])
			}
		}
	}
	return out, nil
}

// LocalEncoder extracts a radius-2 window centered on the agent, clipped to
// the grid bounds. The clipped window is copied into the top-left corner of
// a zeroed 5x5x3 buffer, so near the bottom/right edges the padding stays at
// the bottom/right of the patch rather than re-centering it. Two scalars,
// steps remaining and cells remaining, are appended after the flattened
// patch, each clamped to [0,255].
type LocalEncoder struct{}

var _ Encoder = LocalEncoder{}

func (LocalEncoder) Space() Space {
	return Space{Len: LocalLen, Low: 0, High: 255}
}

func (LocalEncoder) Encode(grid gridenv.Grid, info *gridenv.StepInfo) ([]uint8, error) {
	if info == nil {
		return nil, fmt.Errorf("local encoding: %w", ErrNoStepInfo)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	row, col := info.AgentRow(), info.AgentCol()
	rowMin, rowMax := max(0, row-patchRadius), min(gridenv.Rows, row+patchRadius+1)
	colMin, colMax := max(0, col-patchRadius), min(gridenv.Cols, col+patchRadius+1)

	var patch [patchSize][patchSize][gridenv.Channels]uint8
	for r := rowMin; r < rowMax; r++ {
		for c := colMin; c < colMax; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				patch[r-rowMin][c-colMin][ch] = grid[r][c][ch]
			}
		}
	}

	out := make([]uint8, 0, LocalLen)
	for r := 0; r < patchSize; r++ {
		for c := 0; c < patchSize; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				out = append(out, patch[r][c][ch])
			}
		}
	}
	out = append(out, clampByte(info.StepsRemaining), clampByte(info.CellsRemaining))
	return out, nil
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
