package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Trace walks the loop through the start tile of g.
// Returns the closed Path (start first and last) and the StartShape.
// Returns ErrMalformedLoop when the pipes around the start do not close into
// a single loop.
// Complexity: O(L) for a loop of L tiles.
func Trace(g *pipegrid.Grid) (Path, StartShape, error) {
	if g == nil {
		return nil, StartShape{}, fmt.Errorf("%w: nil grid", ErrMalformedLoop)
	}
	start := g.Start()
	legs := onward(g, start, pipe.Start)
	if len(legs) < 2 {
		return nil, StartShape{}, fmt.Errorf("%w: start %s has %d connected legs, want 2",
			ErrMalformedLoop, start.Pos, len(legs))
	}

	var firstErr error
	for _, d := range legs {
		path, ret, err := walk(g, start, d)
		if err == nil {
			return path, StartShape{Depart: d, Return: ret}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, StartShape{}, firstErr
}

// onward lists the directions from t, other than back, whose neighbor
// connects back to t.
func onward(g *pipegrid.Grid, t pipe.Tile, back pipe.Direction) []pipe.Direction {
	var out []pipe.Direction
	for _, d := range t.Dirs.Without(back).Directions() {
		n, ok := g.Neighbor(t.Pos, d)
		if ok && pipe.Compatible(t.Dirs, d, n.Dirs) {
			out = append(out, d)
		}
	}
	return out
}

// walk follows the leg that leaves start in direction first until it comes
// back to start. It returns the path and the start-relative return direction.
func walk(g *pipegrid.Grid, start pipe.Tile, first pipe.Direction) (Path, pipe.Direction, error) {
	limit := g.NonEmpty()
	path := Path{start}
	move := first
	cur, _ := g.Neighbor(start.Pos, first)

	for steps := 1; ; steps++ {
		path = append(path, cur)
		if cur.IsStart() {
			return path, move.Reverse(), nil
		}
		if steps >= limit {
			return nil, pipe.Start, fmt.Errorf("%w: leg %s did not close within %d tiles",
				ErrMalformedLoop, first, limit)
		}
		next := onward(g, cur, move.Reverse())
		if len(next) != 1 {
			return nil, pipe.Start, fmt.Errorf("%w: tile %c at %s has %d onward connections, want 1",
				ErrMalformedLoop, cur.Symbol, cur.Pos, len(next))
		}
		move = next[0]
		cur, _ = g.Neighbor(cur.Pos, move)
	}
}
