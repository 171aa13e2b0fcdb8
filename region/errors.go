package region

import "errors"

var (
	// ErrForeignCell indicates a cell outside the board.
	ErrForeignCell = errors.New("region: cell outside board")
	// ErrEmptyRegion indicates an empty source or destination group.
	ErrEmptyRegion = errors.New("region: source and destination must be non-empty")
	// ErrNoPath indicates no path exists between the two groups.
	ErrNoPath = errors.New("region: no path between groups")
)
