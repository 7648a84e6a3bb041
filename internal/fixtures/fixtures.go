// Package fixtures holds the reference puzzles shared by the package tests
// and benchmarks, together with their known answers.
package fixtures

// Puzzle is one reference grid with its expected answers.
type Puzzle struct {
	Name     string
	Text     string
	Steps    int
	Interior int
}

// SimpleLoop is a 5×5 square loop around a single ground cell.
const SimpleLoop = `.....
.S-7.
.|.|.
.L-J.
.....`

// SimpleLoopJunk is SimpleLoop with stray connectors around and inside the loop.
const SimpleLoopJunk = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`

// ComplexLoop is the 5×5 loop with junk ground outside.
const ComplexLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

// Squeeze is an 11×9 loop whose interior pocket is reached only by
// squeezing between pipes.
const Squeeze = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

// Larger is a 20×10 loop with nested junk.
const Larger = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

// Dense is a 20×10 grid where nearly every cell is a connector.
const Dense = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`

// Tiny is the smallest possible loop, a 2×2 ring.
const Tiny = `S7
LJ`

// All lists every well-formed puzzle with its answers.
var All = []Puzzle{
	{Name: "SimpleLoop", Text: SimpleLoop, Steps: 4, Interior: 1},
	{Name: "SimpleLoopJunk", Text: SimpleLoopJunk, Steps: 4, Interior: 1},
	{Name: "ComplexLoop", Text: ComplexLoop, Steps: 8, Interior: 1},
	{Name: "Squeeze", Text: Squeeze, Steps: 23, Interior: 4},
	{Name: "Larger", Text: Larger, Steps: 70, Interior: 8},
	{Name: "Dense", Text: Dense, Steps: 80, Interior: 10},
	{Name: "Tiny", Text: Tiny, Steps: 2, Interior: 0},
}
