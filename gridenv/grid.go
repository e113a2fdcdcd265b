package gridenv

// Grid dimensions are fixed by the environment engine: a 10x10 map with
// three channels per cell (background, coverage marker, entity marker).
const (
	Rows     = 10
	Cols     = 10
	Channels = 3
	Cells    = Rows * Cols
)

// Grid is an immutable per-step snapshot of the map. The fixed-size array
// type makes a mismatched grid shape unrepresentable.
type Grid [Rows][Cols][Channels]uint8
