// Package board provides a square grid of 1-based (row, column) cells and a
// generic per-cell value store layered on top of it.
//
// What:
//
//   - SquareBoard owns all width×width cells of a fixed-size board and answers
//     positional queries (Cell, CellOrNull), enumeration (AllCells, Cells),
//     range queries (Row, Column) and neighbour resolution (Neighbour).
//   - GameBoard[T] embeds a SquareBoard and keeps one optional value of type T
//     per cell, with predicate lookups (Filter, Find, Any, All, Count).
//   - Direction is a closed set of four unit moves whose deltas live in a
//     lookup table, so neighbour resolution is "add delta, then bounds-check".
//
// Why:
//
//   - Puzzle and board games: 2048, tic-tac-toe, match-3, minesweeper.
//   - Any bounded grid where cells are addressed by (row, column).
//
// Complexity:
//
//   - Cell, CellOrNull, Neighbour, Get, Set: O(1).
//   - AllCells, Filter, Find, Any, All:      O(W²).
//   - Row, Column:                           O(W).
//
// Enumeration order is always row-major: row ascending outer, column
// ascending inner. GameBoard stores slots densely at index (i-1)*W + (j-1).
//
// Errors:
//
//   - ErrBadWidth: width ≤ 0, or width² overflows int, at construction.
//   - ErrOutOfRange: row or column outside 1..W in Row/Column.
//   - ErrRangeStart: a progression starts below 1.
//   - ErrBadStep: a progression with step 0 or math.MinInt.
//   - ErrNoMatch: Find matched no cell.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Cell with out-of-range coordinates and GameBoard access with a cell that
// does not belong to the board are programming errors and panic; use
// CellOrNull when coordinates are untrusted.
//
// Concurrency: a SquareBoard is immutable and safe for concurrent readers.
// A GameBoard is not safe for concurrent use; callers synchronize writes.
package board
