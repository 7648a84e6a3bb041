// Package loop traces the single closed pipe loop that passes through the
// start tile of a pipegrid.Grid.
//
// What:
//
//   - Trace walks from the start along mutually compatible connectors until it
//     re-enters the start, returning the ordered Path and the StartShape.
//   - StartShape records the departing and returning directions at the start,
//     which is the only way to learn what the 'S' tile really is.
//   - FurthestPoint reports the step count to the tile farthest along the loop.
//
// Algorithm:
//
//  1. From the start, every neighbor that offers the reverse direction is a leg.
//  2. At each later tile, drop the direction that retraces the previous edge;
//     exactly one compatible onward direction must remain.
//  3. Stop on re-entering the start. Return = reverse of the final move.
//
// If stray connectors also point at the start, legs are tried in Up, Down,
// Left, Right order and the first one that closes the loop is used.
//
// Complexity:
//
//   - Trace: O(L) time and memory for a loop of L tiles, bounded by the
//     grid's non-empty tile count.
//
// Errors:
//
//   - ErrMalformedLoop: the start has fewer than two legs, a tile on the walk
//     has zero or several onward connections, or the walk exceeds the
//     non-empty tile count without closing.
package loop
