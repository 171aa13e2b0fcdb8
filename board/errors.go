package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrBadWidth indicates a board width that is zero, negative, or too large
	// for width² cells to fit in an int.
	ErrBadWidth = errors.New("board: invalid width")
	// ErrOutOfRange indicates a row or column index outside 1..width.
	ErrOutOfRange = errors.New("board: index out of range")
	// ErrRangeStart indicates a progression whose lowest value is below 1.
	ErrRangeStart = errors.New("board: range starts below 1")
	// ErrBadStep indicates a progression step of zero or math.MinInt.
	ErrBadStep = errors.New("board: invalid progression step")
	// ErrNoMatch indicates that Find found no cell satisfying the predicate.
	ErrNoMatch = errors.New("board: no cell matches predicate")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")
)
