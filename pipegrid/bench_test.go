package pipegrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// BenchmarkParse measures parsing of a 140×140 grid (puzzle-sized input)
// holding one large rectangular loop.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	text := rectangleLoop(140)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipegrid.Parse(text); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// rectangleLoop renders an n×n grid whose border is a single loop.
func rectangleLoop(n int) string {
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == n-1 && y == 0:
				sb.WriteByte('7')
			case x == 0 && y == n-1:
				sb.WriteByte('L')
			case x == n-1 && y == n-1:
				sb.WriteByte('J')
			case y == 0 || y == n-1:
				sb.WriteByte('-')
			case x == 0 || x == n-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
