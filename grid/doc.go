// Package grid defines the rectangular maze grid model shared by the maze
// generator, the step-search engines, and the renderers.
//
// What:
//
//   - Position: a (row, col) value type identifying one cell.
//   - Cell: kind (Wall/Path/Start/End plus search-derived kinds), fixed
//     IsStart/IsEnd flags, and per-run search scratch (Visited, Parent, costs).
//   - Grid: a Width×Height row-major collection of Cells.
//   - MazeData: a Grid plus denormalized start/end positions.
//
// Why:
//
//   - Search algorithms mutate a private deep copy of the maze; Clone and
//     ResetVisitation keep the displayed "clean" maze and any in-progress
//     search fully independent.
//   - Rendering maps Cell.Kind to visual styles; IsStart/IsEnd must be
//     consulted in addition to Kind, because Kind cycles through
//     Visited/Visiting/Solution during a run while the flags never change.
//
// Invariants:
//
//   - Exactly one cell has IsStart=true and exactly one has IsEnd=true.
//   - Start ≠ End, and neither is ever a Wall after generation.
//   - MazeData.Start/End always equal the positions of the flagged cells.
//
// Errors:
//
//   - ErrEmptyGrid: requested grid has no rows or no columns.
//   - ErrNilGrid, ErrNoStart, ErrNoEnd, ErrStartEndOverlap,
//     ErrStartEndMismatch: structural invariant violations from Validate.
//
// Complexity: all per-cell accessors are O(1); Clone, ResetVisitation and
// Validate are O(W×H).
package grid
