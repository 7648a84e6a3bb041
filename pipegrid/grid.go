package pipegrid

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pipeloop/pipe"
)

// Parse builds a Grid from puzzle text, one row per line.
// A trailing "\r" on each line is dropped, as is the empty line that a final
// newline leaves behind. Any other blank line is a zero-length row and fails
// the rectangular check.
func Parse(text string) (*Grid, error) {
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return New(lines)
}

// New constructs a Grid from equal-length rows of catalog symbols.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrIrregularRow if any row length differs, pipe.ErrInvalidSymbol for an
// unknown character, and ErrNoStartTile / ErrMultipleStartTiles unless exactly
// one 'S' is present.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), utf8.RuneCountInString(rows[0])
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrIrregularRow, y, n, w)
		}
	}

	g := &Grid{
		Width:  w,
		Height: h,
		tiles:  make([]pipe.Tile, 0, w*h),
		start:  -1,
	}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			t, err := pipe.Parse(pipe.Position{X: x, Y: y}, r)
			if err != nil {
				return nil, err
			}
			if t.IsStart() {
				if g.start >= 0 {
					return nil, fmt.Errorf("%w: %s and %s",
						ErrMultipleStartTiles, g.tiles[g.start].Pos, t.Pos)
				}
				g.start = len(g.tiles)
			}
			if !t.IsEmpty() {
				g.nonEmpty++
			}
			g.tiles = append(g.tiles, t)
			x++
		}
	}
	if g.start < 0 {
		return nil, ErrNoStartTile
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index returns the row-major index of pos, or -1 if pos is out of bounds.
func (g *Grid) Index(pos pipe.Position) int {
	if !g.InBounds(pos.X, pos.Y) {
		return -1
	}
	return g.index(pos.X, pos.Y)
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) pipe.Position {
	return pipe.Position{X: idx % g.Width, Y: idx / g.Width}
}

// Len returns the total number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// At returns the tile at pos, or false if pos is out of bounds.
func (g *Grid) At(pos pipe.Position) (pipe.Tile, bool) {
	if !g.InBounds(pos.X, pos.Y) {
		return pipe.Tile{}, false
	}
	return g.tiles[g.index(pos.X, pos.Y)], true
}

// Neighbor returns the tile one step from pos in direction d, or false when
// that step leaves the grid. Rows never wrap.
// Complexity: O(1).
func (g *Grid) Neighbor(pos pipe.Position, d pipe.Direction) (pipe.Tile, bool) {
	if d == pipe.Start {
		return pipe.Tile{}, false
	}
	return g.At(pos.Step(d))
}

// Start returns the unique start tile.
func (g *Grid) Start() pipe.Tile {
	return g.tiles[g.start]
}

// NonEmpty returns how many tiles offer at least one direction. No loop can
// be longer than this.
func (g *Grid) NonEmpty() int {
	return g.nonEmpty
}

// Row renders row y back into its literal symbols.
// Returns "" if y is out of range.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.Height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.Width)
	for _, t := range g.tiles[g.index(0, y):g.index(0, y+1)] {
		sb.WriteRune(t.Symbol)
	}
	return sb.String()
}
