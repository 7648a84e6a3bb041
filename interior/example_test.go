// File: interior/example_test.go
package interior_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleCount counts the pockets enclosed by a loop that pipes can squeeze
// between. The two ground regions in the middle touch the outside through
// gaps between parallel pipes and do not count; only the four cells in the
// bottom corners are enclosed.
func ExampleCount() {
	g, _ := pipegrid.Parse(`...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`)
	p, shape, _ := loop.Trace(g)

	n, _ := interior.Count(g, p, shape)
	fmt.Println("scan:", n)
	fmt.Println("pick:", interior.PickCount(p))
	flood, _ := interior.FloodCount(g, p, shape)
	fmt.Println("flood:", flood)

	// Output:
	// scan: 4
	// pick: 4
	// flood: 4
}
