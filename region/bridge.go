package region

import (
	"container/list"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridboard/board"
)

// Bridge finds a cheapest orthogonal path from any cell of src to any cell of
// dst. Entering a cell whose value satisfies p is free; entering any other
// cell costs 1. Returns the path (first cell in src, last cell in dst) and
// its cost, i.e. the number of cells that would have to be converted.
//
// Behavior:
//  1. Validate that src and dst are non-empty and on the board.
//  2. Multi-source 0-1 BFS from all src cells:
//     • free steps go to the front of the deque
//     • paid steps go to the back
//  3. Stop when a dst cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W²) on average. Memory: O(W²) for distance and predecessors.
func Bridge[T any](g *board.GameBoard[T], p board.Predicate[T], src, dst []board.Cell) (path []board.Cell, cost int, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrEmptyRegion
	}
	dstSet := mapset.New[board.Cell]()
	for _, c := range dst {
		if !g.Contains(c) {
			return nil, 0, fmt.Errorf("%w: destination %v", ErrForeignCell, c)
		}
		dstSet.Put(c)
	}

	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for _, c := range src {
		if !g.Contains(c) {
			return nil, 0, fmt.Errorf("%w: source %v", ErrForeignCell, c)
		}
		i := g.Index(c)
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		uc := g.CellAt(u)
		if dstSet.Has(uc) {
			target = u
			break
		}
		for _, vc := range g.Neighbours(uc) {
			v := g.Index(vc)
			step := 0
			if !matches(g, vc, p) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, g.CellAt(at))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[target], nil
}
