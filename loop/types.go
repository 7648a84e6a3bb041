package loop

import (
	"errors"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ErrMalformedLoop indicates the walk from the start does not form one closed loop.
var ErrMalformedLoop = errors.New("loop: malformed loop")

// Path is the ordered loop, starting and ending with the start tile.
// Consecutive tiles are connected by mutually compatible directions.
type Path []pipe.Tile

// Edges returns the number of moves in the loop (len(p)-1).
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Positions returns the positions of the path tiles in walk order.
func (p Path) Positions() []pipe.Position {
	out := make([]pipe.Position, len(p))
	for i, t := range p {
		out[i] = t.Pos
	}
	return out
}

// Contains reports whether pos is on the path.
// Complexity: O(len(p)); callers scanning a whole grid should build a set.
func (p Path) Contains(pos pipe.Position) bool {
	for _, t := range p {
		if t.Pos == pos {
			return true
		}
	}
	return false
}

// StartShape is the resolved shape of the start tile: the direction taken
// when leaving it and the direction, seen from the start, of the final
// arrival.
type StartShape struct {
	Depart pipe.Direction
	Return pipe.Direction
}

// Set returns the two directions as a pipe.Set.
func (s StartShape) Set() pipe.Set {
	return pipe.SetOf(s.Depart, s.Return)
}

// Symbol returns the concrete catalog symbol equivalent to the start tile,
// or 0 if the two directions do not form a connector.
func (s StartShape) Symbol() rune {
	set := s.Set()
	if set.Len() != 2 {
		return 0
	}
	r, ok := pipe.SymbolFor(set)
	if !ok {
		return 0
	}
	return r
}

// FurthestPoint returns the number of steps along the loop from the start to
// the farthest tile: half the edge count, rounded up.
func FurthestPoint(p Path) int {
	return (p.Edges() + 1) / 2
}
