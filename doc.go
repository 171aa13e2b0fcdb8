// Package gridboard is an in-memory toolkit for square, grid-based puzzles
// and board games: addressing cells, walking between them and storing a
// value per cell.
//
// What is gridboard?
//
//	A small, zero-surprise library built from two layers:
//		• an immutable indexer over the cells of a W×W board
//		• a generic per-cell value store layered on top of it
//
// Why choose gridboard?
//
//   - 1-based (row, column) cells that are plain comparable values
//   - Deterministic row-major enumeration everywhere
//   - Edge-safe neighbour lookup through a single delta table
//   - Predicate queries (Filter, Find, Any, All) over optional values
//
// Subpackages:
//
//	board/   — Cell, Direction, SquareBoard and GameBoard[T]
//	region/  — flood fill, connected regions and bridges over a GameBoard
//	examples/ — a runnable tic-tac-toe walk-through
//
// Quick ASCII example (W = 3, row-major order):
//
//	(1,1) (1,2) (1,3)
//	(2,1) (2,2) (2,3)
//	(3,1) (3,2) (3,3)
//
//	go get github.com/katalvlaran/gridboard
package gridboard
