package interior_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/internal/fixtures"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

func traced(t testing.TB, text string) (*pipegrid.Grid, loop.Path, loop.StartShape) {
	t.Helper()
	g, err := pipegrid.Parse(text)
	require.NoError(t, err)
	p, shape, err := loop.Trace(g)
	require.NoError(t, err)
	return g, p, shape
}

// TestCount_Fixtures checks every counting method and option against the
// known answers of the reference puzzles.
func TestCount_Fixtures(t *testing.T) {
	for _, pz := range fixtures.All {
		t.Run(pz.Name, func(t *testing.T) {
			g, p, shape := traced(t, pz.Text)

			down, err := interior.Count(g, p, shape)
			require.NoError(t, err)
			assert.Equal(t, pz.Interior, down, "EdgesDown")

			up, err := interior.Count(g, p, shape, interior.WithEdgeClass(interior.EdgesUp))
			require.NoError(t, err)
			assert.Equal(t, pz.Interior, up, "EdgesUp")

			par, err := interior.Count(g, p, shape, interior.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, pz.Interior, par, "parallel")

			assert.Equal(t, pz.Interior, interior.PickCount(p), "Pick")

			flood, err := interior.FloodCount(g, p, shape)
			require.NoError(t, err)
			assert.Equal(t, pz.Interior, flood, "flood")
		})
	}
}

// TestPickCount_Square checks the shoelace area of the 3×3 tile ring.
func TestPickCount_Square(t *testing.T) {
	_, p, _ := traced(t, fixtures.SimpleLoop)
	assert.Equal(t, 8, interior.TwiceArea(p)) // 2×2 square between tile centers
	assert.Equal(t, 1, interior.PickCount(p))
	assert.Equal(t, 0, interior.PickCount(nil))
}

// TestCount_StartShapeMatters shows that classifying 'S' by its literal
// symbol instead of its resolved shape changes the answer.
func TestCount_StartShapeMatters(t *testing.T) {
	g, p, shape := traced(t, fixtures.SimpleLoop)
	require.Equal(t, 'F', shape.Symbol())

	// Pretend the start were a horizontal pipe: the row through it no longer
	// toggles at the start and the interior cell is lost.
	wrong := loop.StartShape{Depart: pipe.Left, Return: pipe.Right}
	n, err := interior.Count(g, p, wrong)
	require.NoError(t, err)
	assert.NotEqual(t, 1, n)
}

// TestCount_InconsistentPath covers the defensive path checks.
func TestCount_InconsistentPath(t *testing.T) {
	g, p, shape := traced(t, fixtures.SimpleLoop)
	other, op, _ := traced(t, fixtures.Squeeze)

	cases := []struct {
		name  string
		g     *pipegrid.Grid
		p     loop.Path
		shape loop.StartShape
	}{
		{"NilGrid", nil, p, shape},
		{"EmptyPath", g, nil, shape},
		{"NotClosed", g, p[:len(p)-1], shape},
		{"UnresolvedStart", g, p, loop.StartShape{}},
		{"ForeignPath", g, op, shape},
		{"OutOfBounds", other, append(loop.Path{op[0]}, append(loop.Path{{Pos: pipe.Position{X: 40, Y: 40}, Symbol: '|'}}, op[1:]...)...), shape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interior.Count(tc.g, tc.p, tc.shape)
			assert.ErrorIs(t, err, interior.ErrInconsistentPath)
			_, err = interior.FloodCount(tc.g, tc.p, tc.shape)
			assert.ErrorIs(t, err, interior.ErrInconsistentPath)
		})
	}
}

// TestCount_Cancelled verifies a cancelled context stops both scan modes.
func TestCount_Cancelled(t *testing.T) {
	g, p, shape := traced(t, fixtures.Larger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := interior.Count(g, p, shape, interior.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = interior.Count(g, p, shape, interior.WithContext(ctx), interior.WithWorkers(3))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEdgeClass covers parsing and the class alphabets.
func TestEdgeClass(t *testing.T) {
	assert.Equal(t, []rune{'|', '7', 'F'}, interior.EdgesDown.Symbols())
	assert.Equal(t, []rune{'|', 'L', 'J'}, interior.EdgesUp.Symbols())

	c, err := interior.ParseEdgeClass("UP")
	require.NoError(t, err)
	assert.Equal(t, interior.EdgesUp, c)
	c, err = interior.ParseEdgeClass("")
	require.NoError(t, err)
	assert.Equal(t, interior.EdgesDown, c)
	assert.Equal(t, "down", c.String())

	_, err = interior.ParseEdgeClass("sideways")
	assert.Error(t, err)
}
