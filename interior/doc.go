// Package interior counts the grid cells enclosed by a traced pipe loop.
//
// What:
//
//   - Count: scanline crossing-number (even-odd) rule. Each row is scanned left
//     to right; crossing a loop tile of the vertical-edge class flips
//     inside/outside, and non-loop cells seen while inside are counted.
//   - PickCount: shoelace area of the loop plus Pick's theorem,
//     I = A - B/2 + 1, with B the loop's edge count.
//   - FloodCount: upsamples every cell to 3×3 pixels, draws the loop, floods
//     the outside from the border and counts the cells left untouched.
//
// Vertical-edge class:
//
//   - EdgesDown (default): '|', 'F', '7', the tiles that reach the row below.
//   - EdgesUp: '|', 'L', 'J', the tiles that reach the row above.
//
// A horizontal run such as F--J crosses the boundary once and contributes one
// toggle under either class; F--7 does not cross and contributes zero or two.
// The start tile is classified by its resolved shape, never by 'S'.
//
// Options:
//
//   - WithEdgeClass: choose EdgesDown or EdgesUp.
//   - WithWorkers: scan rows concurrently on up to n goroutines.
//   - WithContext: cancel a long concurrent scan.
//
// Complexity:
//
//   - Count: O(W×H + L) time, O(W×H) memory.
//   - PickCount: O(L) time, O(1) memory.
//   - FloodCount: O(9×W×H) time and memory.
//
// Errors:
//
//   - ErrInconsistentPath: the path does not start and end at the grid start,
//     leaves the grid, disagrees with the grid's tiles, or a tile's effective
//     symbol is not a two-way connector.
//   - context errors from WithContext are returned as-is.
package interior
