package board

import "strconv"

// Cell identifies a board position by 1-based row I and column J.
// Cells are plain values: two cells with the same (I, J) are the same cell,
// and a Cell can be copied, compared with == and used as a map key.
type Cell struct {
	I, J int
}

// Add returns the cell translated by (di, dj). The result may lie outside
// any board; resolve it through SquareBoard.CellOrNull.
func (c Cell) Add(di, dj int) Cell {
	return Cell{I: c.I + di, J: c.J + dj}
}

// String renders the cell as "(i, j)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.I) + ", " + strconv.Itoa(c.J) + ")"
}
