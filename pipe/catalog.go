package pipe

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol indicates a character outside the tile catalog.
var ErrInvalidSymbol = errors.New("pipe: invalid tile symbol")

// Symbol constants of the catalog alphabet.
const (
	Vertical   = '|'
	Horizontal = '-'
	NorthEast  = 'L'
	NorthWest  = 'J'
	SouthWest  = '7'
	SouthEast  = 'F'
	StartMark  = 'S'
	Ground     = '.'
)

// symbols keeps the alphabet in a fixed order for Symbols and SymbolFor.
var symbols = []rune{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast, StartMark, Ground}

var catalog = map[rune]Set{
	Vertical:   SetOf(Up, Down),
	Horizontal: SetOf(Left, Right),
	NorthEast:  SetOf(Up, Right),
	NorthWest:  SetOf(Up, Left),
	SouthWest:  SetOf(Left, Down),
	SouthEast:  SetOf(Right, Down),
	StartMark:  All,
	Ground:     0,
}

// Lookup returns the directions offered by symbol.
// Returns ErrInvalidSymbol for characters outside the catalog.
func Lookup(symbol rune) (Set, error) {
	s, ok := catalog[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return s, nil
}

// SymbolFor is the inverse of Lookup: it returns the catalog symbol whose
// direction set equals s.
func SymbolFor(s Set) (rune, bool) {
	for _, r := range symbols {
		if catalog[r] == s {
			return r, true
		}
	}
	return 0, false
}

// Symbols returns the catalog alphabet in a deterministic order.
func Symbols() []rune {
	out := make([]rune, len(symbols))
	copy(out, symbols)
	return out
}

// Parse builds the Tile for symbol at pos.
// Returns ErrInvalidSymbol, naming the character and position, if symbol is
// not in the catalog.
func Parse(pos Position, symbol rune) (Tile, error) {
	s, ok := catalog[symbol]
	if !ok {
		return Tile{}, fmt.Errorf("%w: %q at %s", ErrInvalidSymbol, symbol, pos)
	}
	return Tile{Pos: pos, Symbol: symbol, Dirs: s}, nil
}

// Compatible reports whether a tile offering from connects to its neighbor
// offering to in direction d: from must offer d and to must offer d.Reverse().
func Compatible(from Set, d Direction, to Set) bool {
	return from.Has(d) && to.Has(d.Reverse())
}
