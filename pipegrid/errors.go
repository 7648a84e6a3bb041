package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrIrregularRow indicates rows of differing lengths.
	ErrIrregularRow = errors.New("pipegrid: all rows must have the same length")
	// ErrNoStartTile indicates no start tile was found.
	ErrNoStartTile = errors.New("pipegrid: no start tile")
	// ErrMultipleStartTiles indicates more than one start tile was found.
	ErrMultipleStartTiles = errors.New("pipegrid: multiple start tiles")
)
