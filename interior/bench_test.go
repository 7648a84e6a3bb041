package interior_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/interior"
)

// ring renders an n×n grid whose border is one loop around ground cells.
//
//	S---7
//	|...|
//	L---J
func ring(n int) string {
	rows := make([][]byte, n)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", n))
	}
	last := n - 1
	for x := 1; x < last; x++ {
		rows[0][x] = '-'
		rows[last][x] = '-'
	}
	for y := 1; y < last; y++ {
		rows[y][0] = '|'
		rows[y][last] = '|'
	}
	rows[0][0], rows[0][last], rows[last][0], rows[last][last] = 'S', '7', 'L', 'J'
	out := make([]string, n)
	for y, r := range rows {
		out[y] = string(r)
	}
	return strings.Join(out, "\n")
}

// BenchmarkCount_Sequential measures the row scan on a 512×512 ring.
// Complexity: O(W×H)
func BenchmarkCount_Sequential(b *testing.B) {
	g, p, shape := traced(b, ring(512))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interior.Count(g, p, shape)
	}
}

// BenchmarkCount_Parallel measures the same scan over 8 workers.
func BenchmarkCount_Parallel(b *testing.B) {
	g, p, shape := traced(b, ring(512))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interior.Count(g, p, shape, interior.WithWorkers(8))
	}
}

// BenchmarkFloodCount measures the 3× flood cross-check on the same ring.
func BenchmarkFloodCount(b *testing.B) {
	g, p, shape := traced(b, ring(512))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = interior.FloodCount(g, p, shape)
	}
}
