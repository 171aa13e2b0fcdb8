package board

import (
	"fmt"
	"iter"
	"math"
)

// SquareBoard is an immutable width×width grid of cells.
// cells holds every cell in row-major order, so the cell at (i, j) lives at
// index (i-1)*width + (j-1).
type SquareBoard struct {
	width int
	cells []Cell
}

// NewSquareBoard builds the board of the given width with all width² cells.
// Returns ErrBadWidth if width ≤ 0 or width² overflows int.
// Complexity: O(W²) time and memory.
func NewSquareBoard(width int) (*SquareBoard, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	if width > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %d×%d cells overflow int", ErrBadWidth, width, width)
	}
	cells := make([]Cell, 0, width*width)
	for i := 1; i <= width; i++ {
		for j := 1; j <= width; j++ {
			cells = append(cells, Cell{I: i, J: j})
		}
	}

	return &SquareBoard{width: width, cells: cells}, nil
}

// Width returns the number of rows (and columns) of the board.
func (b *SquareBoard) Width() int {
	return b.width
}

// Size returns the number of cells, width².
func (b *SquareBoard) Size() int {
	return len(b.cells)
}

// Cell returns the cell at row i, column j.
// It panics unless 1 ≤ i, j ≤ Width(); use CellOrNull for untrusted input.
// Complexity: O(1).
func (b *SquareBoard) Cell(i, j int) Cell {
	if !b.inBounds(i, j) {
		panic(fmt.Sprintf("board: cell (%d, %d) outside %dx%d board", i, j, b.width, b.width))
	}

	return b.cells[b.index(i, j)]
}

// CellOrNull returns the cell at (i, j) and true, or the zero Cell and false
// when (i, j) lies outside the board.
// Complexity: O(1).
func (b *SquareBoard) CellOrNull(i, j int) (Cell, bool) {
	if !b.inBounds(i, j) {
		return Cell{}, false
	}

	return b.cells[b.index(i, j)], true
}

// Contains reports whether c is a cell of this board.
func (b *SquareBoard) Contains(c Cell) bool {
	return b.inBounds(c.I, c.J)
}

// AllCells returns every cell in row-major order. The slice is a fresh copy
// on every call.
// Complexity: O(W²).
func (b *SquareBoard) AllCells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)

	return out
}

// Cells yields every cell in row-major order.
func (b *SquareBoard) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range b.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Row returns the cells of row i at the columns of cols, in the order of cols.
// Columns above Width() are dropped; an empty progression yields an empty
// slice. Returns ErrOutOfRange if i is outside 1..Width(), ErrRangeStart if
// cols reaches below column 1, and ErrBadStep for a zero or math.MinInt step.
// Complexity: O(W).
func (b *SquareBoard) Row(i int, cols Progression) ([]Cell, error) {
	if i < 1 || i > b.width {
		return nil, fmt.Errorf("%w: row %d not in 1..%d", ErrOutOfRange, i, b.width)
	}
	js, err := b.indices(cols)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, len(js))
	for k, j := range js {
		out[k] = b.cells[b.index(i, j)]
	}

	return out, nil
}

// Column returns the cells of column j at the rows of rows, in the order of
// rows. Bounds are handled exactly as in Row.
// Complexity: O(W).
func (b *SquareBoard) Column(rows Progression, j int) ([]Cell, error) {
	if j < 1 || j > b.width {
		return nil, fmt.Errorf("%w: column %d not in 1..%d", ErrOutOfRange, j, b.width)
	}
	is, err := b.indices(rows)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, len(is))
	for k, i := range is {
		out[k] = b.cells[b.index(i, j)]
	}

	return out, nil
}

// Neighbour returns the cell adjacent to c in direction d, or false at the
// board edge. It panics if d is not a valid Direction.
// Complexity: O(1).
func (b *SquareBoard) Neighbour(c Cell, d Direction) (Cell, bool) {
	di, dj := d.Delta()

	return b.CellOrNull(c.I+di, c.J+dj)
}

// Neighbours returns the cells adjacent to c, in Directions() order,
// skipping directions that leave the board.
func (b *SquareBoard) Neighbours(c Cell) []Cell {
	out := make([]Cell, 0, len(deltas))
	for _, d := range Directions() {
		if n, ok := b.Neighbour(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// Index maps a cell of this board to its row-major position in [0, W²).
// It panics if c does not belong to the board.
func (b *SquareBoard) Index(c Cell) int {
	if !b.Contains(c) {
		panic(fmt.Sprintf("board: cell %v outside %dx%d board", c, b.width, b.width))
	}

	return b.index(c.I, c.J)
}

// CellAt converts a row-major index back to its cell.
// It panics unless 0 ≤ idx < Size().
func (b *SquareBoard) CellAt(idx int) Cell {
	if idx < 0 || idx >= len(b.cells) {
		panic(fmt.Sprintf("board: index %d outside [0, %d)", idx, len(b.cells)))
	}

	return b.cells[idx]
}

func (b *SquareBoard) inBounds(i, j int) bool {
	return i >= 1 && i <= b.width && j >= 1 && j <= b.width
}

// index maps (i, j) to (i-1)*width + (j-1).
func (b *SquareBoard) index(i, j int) int {
	return (i-1)*b.width + (j - 1)
}

// indices validates p against the board and returns its values with the
// upper bound clamped to the width.
func (b *SquareBoard) indices(p Progression) ([]int, error) {
	if p.Step == 0 || p.Step == math.MinInt {
		return nil, fmt.Errorf("%w: %v", ErrBadStep, p)
	}
	p = p.clampMax(b.width)
	if p.Empty() {
		return []int{}, nil
	}
	if p.Min() < 1 {
		return nil, fmt.Errorf("%w: %v", ErrRangeStart, p)
	}
	if p.Max() > b.width {
		return nil, fmt.Errorf("%w: %v exceeds width %d", ErrOutOfRange, p, b.width)
	}

	return p.Values(), nil
}
