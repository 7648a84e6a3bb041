package pipeloop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop"
)

// ExampleSolve computes both answers for the 20×10 reference puzzle.
func ExampleSolve() {
	res, err := pipeloop.Solve(`.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("steps=%d interior=%d\n", res.Steps, res.Interior)

	// Output:
	// steps=70 interior=8
}
