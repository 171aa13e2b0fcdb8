package region

import (
	"fmt"

	"github.com/katalvlaran/gridboard/board"
)

// FloodFill returns the cells connected to start through orthogonal
// neighbours whose values satisfy p, in BFS order starting with start.
// If start itself does not satisfy p the result is empty.
// Returns ErrForeignCell if start is not on the board.
//
// Time:   O(W²).
// Memory: O(W²) for visited flags and output.
func FloodFill[T any](g *board.GameBoard[T], start board.Cell, p board.Predicate[T]) ([]board.Cell, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrForeignCell, start)
	}
	if !matches(g, start, p) {
		return []board.Cell{}, nil
	}
	seen := make([]bool, g.Size())

	return collect(g, start, p, seen), nil
}

// Regions finds all connected groups of cells whose values satisfy p.
// Groups are ordered by their first cell in row-major order; each group is
// in BFS order from that cell.
//
// Time:   O(W²).
// Memory: O(W²) for visited flags and output.
func Regions[T any](g *board.GameBoard[T], p board.Predicate[T]) [][]board.Cell {
	seen := make([]bool, g.Size())
	var comps [][]board.Cell

	for c := range g.Cells() {
		if seen[g.Index(c)] || !matches(g, c, p) {
			continue
		}
		comps = append(comps, collect(g, c, p, seen))
	}

	return comps
}

// collect runs a BFS from start over matching cells, marking them in seen.
func collect[T any](g *board.GameBoard[T], start board.Cell, p board.Predicate[T], seen []bool) []board.Cell {
	queue := []board.Cell{start}
	seen[g.Index(start)] = true

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbours(queue[qi]) {
			ni := g.Index(n)
			if seen[ni] || !matches(g, n, p) {
				continue
			}
			seen[ni] = true
			queue = append(queue, n)
		}
	}

	return queue
}

func matches[T any](g *board.GameBoard[T], c board.Cell, p board.Predicate[T]) bool {
	v, ok := g.Get(c)

	return p(v, ok)
}
