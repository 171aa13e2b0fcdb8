package board

import "fmt"

// Direction is one of the four orthogonal moves on a board.
type Direction uint8

const (
	// Up moves one row towards row 1.
	Up Direction = iota
	// Down moves one row towards row W.
	Down
	// Left moves one column towards column 1.
	Left
	// Right moves one column towards column W.
	Right
)

// delta is the (row, column) offset a direction applies to a cell.
type delta struct{ di, dj int }

// deltas is indexed by Direction; resolution never branches per direction.
var deltas = [...]delta{
	Up:    {-1, 0},
	Down:  {+1, 0},
	Left:  {0, -1},
	Right: {0, +1},
}

var directionNames = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Directions returns the four directions in declaration order:
// Up, Down, Left, Right.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return int(d) < len(deltas)
}

// Delta returns the row and column offsets of d.
// It panics if d is not a valid Direction.
func (d Direction) Delta() (di, dj int) {
	d.mustValid()
	x := deltas[d]

	return x.di, x.dj
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	d.mustValid()

	return opposites[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

func (d Direction) mustValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("board: invalid direction %d", uint8(d)))
	}
}
