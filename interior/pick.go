package interior

import "github.com/katalvlaran/pipeloop/loop"

// TwiceArea returns twice the area enclosed by the closed path, computed with
// the shoelace formula over the tile centers.
// Complexity: O(L).
func TwiceArea(p loop.Path) int {
	sum := 0
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i].Pos, p[i+1].Pos
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// PickCount returns the number of lattice points strictly inside the closed
// path by Pick's theorem: I = A - B/2 + 1, where every edge of a grid loop
// contributes exactly one boundary point.
// Returns 0 for a path too short to enclose anything.
// Complexity: O(L).
func PickCount(p loop.Path) int {
	b := p.Edges()
	if b < 4 {
		return 0
	}
	return (TwiceArea(p) - b + 2) / 2
}
