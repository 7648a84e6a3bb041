package pipe

import (
	"fmt"
	"math/bits"
)

// Direction names one of the four orthogonal moves on the grid.
type Direction uint8

const (
	// Start marks the absence of a previous move (the walk has not begun).
	Start Direction = iota
	// Up moves to the previous row.
	Up
	// Down moves to the next row.
	Down
	// Left moves to the previous column.
	Left
	// Right moves to the next column.
	Right
)

// Directions lists the four real directions in canonical order.
// Every iteration over a Set follows this order.
var Directions = [4]Direction{Up, Down, Left, Right}

var (
	reverse = [...]Direction{Start: Start, Up: Down, Down: Up, Left: Right, Right: Left}
	offsets = [...][2]int{Start: {0, 0}, Up: {0, -1}, Down: {0, 1}, Left: {-1, 0}, Right: {1, 0}}
	names   = [...]string{Start: "Start", Up: "Up", Down: "Down", Left: "Left", Right: "Right"}
)

// Reverse returns the opposite direction. Start is its own reverse.
func (d Direction) Reverse() Direction {
	if int(d) >= len(reverse) {
		return Start
	}
	return reverse[d]
}

// Offset returns the (dx, dy) column/row delta of a single step in d.
func (d Direction) Offset() (dx, dy int) {
	if int(d) >= len(offsets) {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

func (d Direction) String() string {
	if int(d) >= len(names) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// bit maps a real direction onto its Set bit; Start has none.
func (d Direction) bit() Set {
	if d == Start || int(d) >= len(names) {
		return 0
	}
	return 1 << (d - 1)
}

// Position is a 0-indexed cell coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Step returns the position one move away in d. The result may lie outside
// any particular grid; bounds are the grid's concern.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Set is a bitmask of real directions.
type Set uint8

// All holds every real direction; it is the shape of the start tile.
const All = Set(0b1111)

// SetOf builds a Set from the given directions. Start is ignored.
func SetOf(ds ...Direction) Set {
	var s Set
	for _, d := range ds {
		s |= d.bit()
	}
	return s
}

// Has reports whether d is in the set.
func (s Set) Has(d Direction) bool {
	b := d.bit()
	return b != 0 && s&b != 0
}

// Len returns the number of directions in the set.
func (s Set) Len() int {
	return bits.OnesCount8(uint8(s & All))
}

// Without returns the set minus d.
func (s Set) Without(d Direction) Set {
	return s &^ d.bit()
}

// Directions returns the members in canonical order (Up, Down, Left, Right).
func (s Set) Directions() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s Set) String() string {
	return fmt.Sprint(s.Directions())
}

// Tile is one immutable grid cell.
type Tile struct {
	Pos    Position // cell coordinate
	Symbol rune     // literal input character
	Dirs   Set      // directions the connector offers
}

// IsStart reports whether the tile is the unresolved start (all four directions).
func (t Tile) IsStart() bool {
	return t.Dirs.Len() == 4
}

// IsEmpty reports whether the tile offers no connection at all.
func (t Tile) IsEmpty() bool {
	return t.Dirs.Len() == 0
}
