package pipeloop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Result holds both answers for one grid.
type Result struct {
	Steps    int // steps from the start to the farthest loop tile
	Interior int // cells strictly enclosed by the loop
}

// FurthestPointSteps traces the loop of g and returns half its length,
// rounded up.
func FurthestPointSteps(g *pipegrid.Grid) (int, error) {
	p, _, err := loop.Trace(g)
	if err != nil {
		return 0, err
	}
	return loop.FurthestPoint(p), nil
}

// InteriorTileCount traces the loop of g and counts the cells it encloses.
func InteriorTileCount(g *pipegrid.Grid, opts ...interior.Option) (int, error) {
	p, shape, err := loop.Trace(g)
	if err != nil {
		return 0, err
	}
	return interior.Count(g, p, shape, opts...)
}

// Solve parses text, traces the loop once and returns both answers.
func Solve(text string, opts ...interior.Option) (Result, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return Result{}, err
	}
	p, shape, err := loop.Trace(g)
	if err != nil {
		return Result{}, err
	}
	n, err := interior.Count(g, p, shape, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Steps: loop.FurthestPoint(p), Interior: n}, nil
}

// Verify counts the interior of g three independent ways (row scan, Pick's
// theorem, flood fill) and returns interior.ErrInconsistentPath if they
// disagree.
func Verify(g *pipegrid.Grid) error {
	p, shape, err := loop.Trace(g)
	if err != nil {
		return err
	}
	scan, err := interior.Count(g, p, shape)
	if err != nil {
		return err
	}
	flood, err := interior.FloodCount(g, p, shape)
	if err != nil {
		return err
	}
	if pick := interior.PickCount(p); scan != pick || scan != flood {
		return fmt.Errorf("%w: scan=%d pick=%d flood=%d", interior.ErrInconsistentPath, scan, pick, flood)
	}
	return nil
}
