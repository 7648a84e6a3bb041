package interior

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Count returns the number of grid cells strictly inside the loop p, using
// the even-odd rule row by row. shape supplies the start tile's real
// connector.
// Returns ErrInconsistentPath if p is not a loop of g, or the context error
// if the scan is cancelled.
// Complexity: O(W×H + L) time, O(W×H) memory.
func Count(g *pipegrid.Grid, p loop.Path, shape loop.StartShape, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	m, err := resolve(g, p, shape)
	if err != nil {
		return 0, err
	}
	edge := o.Edges.direction()

	if o.Workers < 2 {
		total := 0
		for y := 0; y < g.Height; y++ {
			if err = o.Ctx.Err(); err != nil {
				return 0, err
			}
			total += m.scanRow(g.Width, y, edge)
		}
		return total, nil
	}

	// Rows are independent; each goroutine writes only its own slot.
	counts := make([]int, g.Height)
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for y := 0; y < g.Height; y++ {
		y := y
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[y] = m.scanRow(g.Width, y, edge)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// scanRow counts the non-loop cells of row y that lie inside the loop.
// Parity flips on every loop cell whose connector offers edge.
func (m *mask) scanRow(width, y int, edge pipe.Direction) int {
	inside := false
	n := 0
	for i := y * width; i < (y+1)*width; i++ {
		switch {
		case m.onPath[i]:
			if m.dirs[i].Has(edge) {
				inside = !inside
			}
		case inside:
			n++
		}
	}
	return n
}
