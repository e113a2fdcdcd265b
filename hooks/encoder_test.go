package hooks

import (
	"errors"
	"testing"

	"coveragerl/gridenv"
)

func fillGrid() gridenv.Grid {
	var grid gridenv.Grid
	for r := 0; r < gridenv.Rows; r++ {
		for c := 0; c < gridenv.Cols; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				grid[r][c][ch] = uint8((r*gridenv.Cols+c)*gridenv.Channels + ch)
			}
		}
	}
	return grid
}

func TestGlobalEncodeRoundTrip(t *testing.T) {
	grid := fillGrid()
	obs, err := GlobalEncoder{}.Encode(grid, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(obs) != GlobalLen {
		t.Fatalf("expected %d elements, got %d", GlobalLen, len(obs))
	}

	// reshape row-major channel-last and compare to the source
	var rebuilt gridenv.Grid
	i := 0
	for r := 0; r < gridenv.Rows; r++ {
		for c := 0; c < gridenv.Cols; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				rebuilt[r][c][ch] = obs[i]
				i++
			}
		}
	}
	if rebuilt != grid {
		t.Errorf("reshaped observation does not match the source grid")
	}
}

func TestLocalEncodeLengthAndScalars(t *testing.T) {
	grid := fillGrid()
	for pos := 0; pos < gridenv.Cells; pos++ {
		info := &gridenv.StepInfo{AgentPos: pos, StepsRemaining: 120, CellsRemaining: 37}
		obs, err := LocalEncoder{}.Encode(grid, info)
		if err != nil {
			t.Fatalf("pos %d: %v", pos, err)
		}
		if len(obs) != LocalLen {
			t.Fatalf("pos %d: expected %d elements, got %d", pos, LocalLen, len(obs))
		}
		if obs[LocalLen-2] != 120 || obs[LocalLen-1] != 37 {
			t.Fatalf("pos %d: expected trailing scalars (120,37), got (%d,%d)", pos, obs[LocalLen-2], obs[LocalLen-1])
		}
	}
}

func TestLocalEncodeScalarClamp(t *testing.T) {
	grid := fillGrid()
	info := &gridenv.StepInfo{AgentPos: 50, StepsRemaining: 1000, CellsRemaining: 256}
	obs, err := LocalEncoder{}.Encode(grid, info)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if obs[LocalLen-2] != 255 || obs[LocalLen-1] != 255 {
		t.Errorf("expected scalars clamped to 255, got (%d,%d)", obs[LocalLen-2], obs[LocalLen-1])
	}
}

// patchAt reads the encoded patch value for patch cell (r,c,ch).
func patchAt(obs []uint8, r, c, ch int) uint8 {
	return obs[(r*patchSize+c)*gridenv.Channels+ch]
}

func TestLocalEncodeTopLeftCorner(t *testing.T) {
	grid := fillGrid()
	info := &gridenv.StepInfo{AgentPos: 0}
	obs, err := LocalEncoder{}.Encode(grid, info)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// the clipped window is rows [0,3) x cols [0,3), copied to the top-left
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				if got := patchAt(obs, r, c, ch); got != grid[r][c][ch] {
					t.Fatalf("patch (%d,%d,%d): expected %d, got %d", r, c, ch, grid[r][c][ch], got)
				}
			}
		}
	}
	// the rest of the 5x5 buffer stays zero
	for r := 0; r < patchSize; r++ {
		for c := 0; c < patchSize; c++ {
			if r < 3 && c < 3 {
				continue
			}
			for ch := 0; ch < gridenv.Channels; ch++ {
				if got := patchAt(obs, r, c, ch); got != 0 {
					t.Fatalf("patch (%d,%d,%d): expected zero padding, got %d", r, c, ch, got)
				}
			}
		}
	}
}

func TestLocalEncodeBottomRightCorner(t *testing.T) {
	grid := fillGrid()
	info := &gridenv.StepInfo{AgentPos: 99}
	obs, err := LocalEncoder{}.Encode(grid, info)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// window is rows [7,10) x cols [7,10); padding stays at the bottom/right
	// of the patch, the content at the top-left
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				if got := patchAt(obs, r, c, ch); got != grid[7+r][7+c][ch] {
					t.Fatalf("patch (%d,%d,%d): expected %d, got %d", r, c, ch, grid[7+r][7+c][ch], got)
				}
			}
		}
	}
	for r := 0; r < patchSize; r++ {
		for c := 0; c < patchSize; c++ {
			if r < 3 && c < 3 {
				continue
			}
			for ch := 0; ch < gridenv.Channels; ch++ {
				if got := patchAt(obs, r, c, ch); got != 0 {
					t.Fatalf("patch (%d,%d,%d): expected zero padding, got %d", r, c, ch, got)
				}
			}
		}
	}
}

func TestLocalEncodeCenteredWindow(t *testing.T) {
	grid := fillGrid()
	info := &gridenv.StepInfo{AgentPos: 44} // row 4, col 4, fully interior
	obs, err := LocalEncoder{}.Encode(grid, info)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for r := 0; r < patchSize; r++ {
		for c := 0; c < patchSize; c++ {
			for ch := 0; ch < gridenv.Channels; ch++ {
				if got := patchAt(obs, r, c, ch); got != grid[2+r][2+c][ch] {
					t.Fatalf("patch (%d,%d,%d): expected %d, got %d", r, c, ch, grid[2+r][2+c][ch], got)
				}
			}
		}
	}
}

func TestLocalEncodeRejectsBadInput(t *testing.T) {
	grid := fillGrid()
	if _, err := (LocalEncoder{}).Encode(grid, nil); !errors.Is(err, ErrNoStepInfo) {
		t.Errorf("expected ErrNoStepInfo for nil info, got %v", err)
	}
	if _, err := (LocalEncoder{}).Encode(grid, &gridenv.StepInfo{AgentPos: 100}); !errors.Is(err, gridenv.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for out-of-range position, got %v", err)
	}
}

func TestEncoderSpaces(t *testing.T) {
	if s := (GlobalEncoder{}).Space(); s.Len != 300 || s.Low != 0 || s.High != 255 {
		t.Errorf("unexpected global space %+v", s)
	}
	if s := (LocalEncoder{}).Space(); s.Len != 77 || s.Low != 0 || s.High != 255 {
		t.Errorf("unexpected local space %+v", s)
	}
}
