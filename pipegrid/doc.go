// Package pipegrid holds a rectangular grid of pipe tiles and answers
// bounds-checked neighbor queries over it.
//
// What:
//
//   - Grid wraps a Width×Height array of pipe.Tile values, stored row-major.
//   - Exactly one tile is the start ('S'); construction rejects zero or several.
//   - Neighbor never wraps across rows: moving Left from column 0 yields nothing.
//
// Why:
//
//   - The loop tracer and the interior counter both walk the same immutable
//     grid; validating shape and start once keeps both of them simple.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - Neighbor, At, InBounds, Start: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrIrregularRow: rows have differing lengths.
//   - pipe.ErrInvalidSymbol: a character outside the catalog.
//   - ErrNoStartTile: no tile offers all four directions.
//   - ErrMultipleStartTiles: more than one tile does.
package pipegrid
