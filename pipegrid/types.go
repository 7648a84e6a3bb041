package pipegrid

import "github.com/katalvlaran/pipeloop/pipe"

// Grid is a rectangular array of tiles. It is immutable once built.
// Width is the row length, Height the row count; tiles are kept row-major
// and reached through At, Neighbor and Start.
type Grid struct {
	Width, Height int
	tiles         []pipe.Tile
	start         int // row-major index of the start tile
	nonEmpty      int // tiles offering at least one direction
}
