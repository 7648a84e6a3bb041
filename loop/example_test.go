// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleTrace walks the loop of a small puzzle with junk ground around it.
// Scenario:
//
//	..F7.
//	.FJ|.
//	SJ.L7
//	|F--J
//	LJ...
//
// The start leaves downward and is re-entered from the right, so it behaves
// like an 'F'. The loop has 16 edges; the farthest tile is 8 steps away.
func ExampleTrace() {
	g, _ := pipegrid.Parse("..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...")

	path, shape, err := loop.Trace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", path.Edges())
	fmt.Println("furthest:", loop.FurthestPoint(path))
	fmt.Printf("start: %s/%s as %c\n", shape.Depart, shape.Return, shape.Symbol())

	// Output:
	// edges: 16
	// furthest: 8
	// start: Down/Right as F
}
