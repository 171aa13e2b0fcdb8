package board

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// GameBoard is a SquareBoard with one optional value of type T per cell.
// Slots are stored densely in row-major order, so every predicate query
// visits cells in the order of AllCells.
//
// GameBoard performs no locking: concurrent Set calls, or Set concurrent with
// any query, need external synchronization.
type GameBoard[T any] struct {
	*SquareBoard

	slots    []slot[T]
	initial  slot[T]
	onChange ChangeFunc[T]
}

type slot[T any] struct {
	v  T
	ok bool
}

// NewGameBoard builds a width×width board whose cells all start unset
// (or set to the WithFill value).
// Returns ErrBadWidth if width ≤ 0 and ErrOptionViolation for a bad option.
// Complexity: O(W²) time and memory.
func NewGameBoard[T any](width int, opts ...Option[T]) (*GameBoard[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sb, err := NewSquareBoard(width)
	if err != nil {
		return nil, err
	}
	g := &GameBoard[T]{
		SquareBoard: sb,
		slots:       make([]slot[T], sb.Size()),
		initial:     slot[T]{v: o.Fill, ok: o.Filled},
		onChange:    o.OnChange,
	}
	for c := range sb.Cells() {
		g.slots[sb.index(c.I, c.J)] = g.initial
	}

	return g, nil
}

// Get returns the value of c and true, or the zero value and false if c is
// unset. It panics if c does not belong to the board.
// Complexity: O(1).
func (g *GameBoard[T]) Get(c Cell) (T, bool) {
	s := g.slots[g.Index(c)]

	return s.v, s.ok
}

// Set stores v in c, replacing any previous value.
// Complexity: O(1).
func (g *GameBoard[T]) Set(c Cell, v T) {
	g.write(g.Index(c), slot[T]{v: v, ok: true})
}

// Unset clears c.
func (g *GameBoard[T]) Unset(c Cell) {
	g.write(g.Index(c), slot[T]{})
}

// Put stores v in c when ok is true and clears c otherwise, mirroring the
// (value, ok) pair returned by Get.
func (g *GameBoard[T]) Put(c Cell, v T, ok bool) {
	if !ok {
		g.Unset(c)

		return
	}
	g.Set(c, v)
}

// Reset returns every cell to its initial state.
func (g *GameBoard[T]) Reset() {
	for idx := range g.slots {
		g.write(idx, g.initial)
	}
}

// Filter returns, in row-major order, every cell whose current value
// satisfies p. Unset cells are tested too.
// Complexity: O(W²).
func (g *GameBoard[T]) Filter(p Predicate[T]) []Cell {
	var out []Cell
	for idx, s := range g.slots {
		if p(s.v, s.ok) {
			out = append(out, g.cells[idx])
		}
	}

	return out
}

// FilterSet is Filter returning an unordered set of cells.
func (g *GameBoard[T]) FilterSet(p Predicate[T]) mapset.Set[Cell] {
	set := mapset.New[Cell]()
	for idx, s := range g.slots {
		if p(s.v, s.ok) {
			set.Put(g.cells[idx])
		}
	}

	return set
}

// Find returns the first cell in row-major order whose value satisfies p.
// Returns ErrNoMatch if there is none.
// Complexity: O(W²).
func (g *GameBoard[T]) Find(p Predicate[T]) (Cell, error) {
	for idx, s := range g.slots {
		if p(s.v, s.ok) {
			return g.cells[idx], nil
		}
	}

	return Cell{}, ErrNoMatch
}

// Any reports whether some cell satisfies p, stopping at the first match.
func (g *GameBoard[T]) Any(p Predicate[T]) bool {
	for _, s := range g.slots {
		if p(s.v, s.ok) {
			return true
		}
	}

	return false
}

// All reports whether every cell satisfies p, stopping at the first miss.
func (g *GameBoard[T]) All(p Predicate[T]) bool {
	for _, s := range g.slots {
		if !p(s.v, s.ok) {
			return false
		}
	}

	return true
}

// Count returns the number of cells satisfying p.
func (g *GameBoard[T]) Count(p Predicate[T]) int {
	n := 0
	for _, s := range g.slots {
		if p(s.v, s.ok) {
			n++
		}
	}

	return n
}

// Values yields each set cell with its value in row-major order.
// Writing to the board while iterating is allowed; the iteration observes
// slots as it reaches them.
func (g *GameBoard[T]) Values() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for idx := range g.slots {
			s := g.slots[idx]
			if !s.ok {
				continue
			}
			if !yield(g.cells[idx], s.v) {
				return
			}
		}
	}
}

func (g *GameBoard[T]) write(idx int, s slot[T]) {
	old := g.slots[idx]
	g.slots[idx] = s
	if g.onChange != nil {
		g.onChange(g.cells[idx], old.v, old.ok, s.v, s.ok)
	}
}
