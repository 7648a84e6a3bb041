package interior

import "errors"

// ErrInconsistentPath indicates a path that does not describe a loop of the grid.
var ErrInconsistentPath = errors.New("interior: inconsistent path")
