package interior

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// mask is the loop laid over the grid, row-major: which cells are on the
// path and the effective connector of each of them.
type mask struct {
	onPath []bool
	dirs   []pipe.Set
}

// resolve validates p against g and builds its mask. The start tile takes
// the resolved shape instead of its literal 'S'.
// Complexity: O(W×H + L).
func resolve(g *pipegrid.Grid, p loop.Path, shape loop.StartShape) (*mask, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInconsistentPath)
	}
	if len(p) < 2 {
		return nil, fmt.Errorf("%w: path has %d tiles", ErrInconsistentPath, len(p))
	}
	start := g.Start().Pos
	if p[0].Pos != start || p[len(p)-1].Pos != start {
		return nil, fmt.Errorf("%w: path runs %s→%s, want both ends at start %s",
			ErrInconsistentPath, p[0].Pos, p[len(p)-1].Pos, start)
	}

	m := &mask{
		onPath: make([]bool, g.Len()),
		dirs:   make([]pipe.Set, g.Len()),
	}
	for _, t := range p {
		gt, ok := g.At(t.Pos)
		if !ok {
			return nil, fmt.Errorf("%w: tile %s outside the %dx%d grid",
				ErrInconsistentPath, t.Pos, g.Width, g.Height)
		}
		if gt != t {
			return nil, fmt.Errorf("%w: tile %c at %s, grid holds %c",
				ErrInconsistentPath, t.Symbol, t.Pos, gt.Symbol)
		}
		sym := t.Symbol
		if t.IsStart() {
			sym = shape.Symbol()
		}
		set, err := pipe.Lookup(sym)
		if err != nil || set.Len() != 2 {
			return nil, fmt.Errorf("%w: no connector for %q at %s", ErrInconsistentPath, sym, t.Pos)
		}
		i := g.Index(t.Pos)
		m.onPath[i] = true
		m.dirs[i] = set
	}

	return m, nil
}
