// Package pipe defines the vocabulary shared by every pipeloop package:
// directions, grid positions, direction sets and the tile catalog that maps a
// connector symbol to the directions it offers.
//
// What:
//
//   - Direction: Up, Down, Left, Right plus the Start sentinel ("no prior direction").
//   - Position: 0-indexed (X, Y) cell coordinate; Y grows downward.
//   - Set: compact bitmask of directions (cardinality 0, 2 or 4 for catalog entries).
//   - Tile: immutable {Pos, Symbol, Dirs} record built by Parse.
//
// Catalog:
//
//	'|' → {Up, Down}     '-' → {Left, Right}
//	'L' → {Up, Right}    'J' → {Up, Left}
//	'7' → {Left, Down}   'F' → {Right, Down}
//	'S' → {Up, Down, Left, Right}   (start, shape unknown)
//	'.' → {}                        (ground, never on a loop)
//
// Two tiles A and B are connected in direction d only when A offers d and B
// offers d.Reverse(); Compatible is the single predicate for that check.
//
// Errors:
//
//   - ErrInvalidSymbol: symbol outside the catalog alphabet.
//
// Complexity: every operation is O(1).
package pipe
