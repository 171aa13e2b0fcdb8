// Package region finds connected groups of cells on a board.GameBoard and
// the cheapest way to join two of them.
//
// What:
//
//   - FloodFill collects the cells reachable from a start cell through
//     orthogonal neighbours that satisfy a predicate.
//   - Regions splits every matching cell into connected components.
//   - Bridge runs a multi-source 0-1 BFS: stepping onto a matching cell costs
//     0, onto any other cell 1, and returns the cheapest path between two
//     groups of cells together with the number of cells it has to convert.
//
// Why:
//
//   - Match-3 and Go-like games: detect clusters of equal pieces.
//   - Minesweeper: reveal a connected empty area.
//   - Level design: the shortest bridge between two islands.
//
// Complexity:
//
//   - FloodFill, Regions: O(W²), Memory: O(W²).
//   - Bridge:             O(W²) on average, Memory: O(W²).
//
// Errors:
//
//   - ErrForeignCell: a cell argument lies outside the board.
//   - ErrEmptyRegion: Bridge got an empty source or destination.
//   - ErrNoPath: the destination is unreachable.
package region
