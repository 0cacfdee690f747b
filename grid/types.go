// Package grid defines core types and sentinel errors for the maze grid model.
package grid

import "errors"

// Sentinel errors for grid construction and invariant validation.
var (
	// ErrEmptyGrid indicates a requested grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNilGrid indicates a nil *Grid where one is required.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrNoStart indicates that no cell carries the IsStart flag.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoEnd indicates that no cell carries the IsEnd flag.
	ErrNoEnd = errors.New("grid: no end cell")
	// ErrStartEndOverlap indicates that start and end share a position.
	ErrStartEndOverlap = errors.New("grid: start and end positions coincide")
	// ErrStartEndMismatch indicates MazeData.Start/End disagree with the
	// flagged cells, or a flag appears on more than one cell.
	ErrStartEndMismatch = errors.New("grid: start/end positions do not match flagged cells")
)

// Kind enumerates the visual/structural state of a grid cell.
// Wall/Path/Start/End are structural; Visited/Visiting/Solution/AlternatePath
// are derived by a search run and cleared by ResetVisitation.
type Kind uint8

const (
	// Wall blocks traversal.
	Wall Kind = iota
	// Path is an open, walkable cell.
	Path
	// Start marks the search origin cell.
	Start
	// End marks the search target cell.
	End
	// Visited marks a cell whose expansion has completed.
	Visited
	// Visiting marks a discovered, not-yet-expanded frontier cell.
	Visiting
	// Solution marks a cell on the reconstructed start→end path.
	Solution
	// AlternatePath marks a cell on a diverse alternate route.
	AlternatePath
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	case Visited:
		return "visited"
	case Visiting:
		return "visiting"
	case Solution:
		return "solution"
	case AlternatePath:
		return "alternate"
	}
	return "unknown"
}

// Position identifies one cell by (row, col). It is a value type compared by
// equality of both fields.
type Position struct {
	Row, Col int
}

// Neighbors4 lists the orthogonal neighbor offsets in the canonical expansion
// order used by every traversal in this module: up, right, down, left.
var Neighbors4 = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Cell is one grid cell. Kind mutates over the cell's lifetime; IsStart and
// IsEnd are set once at generation time and never change afterward.
//
// Visited, Parent, G, H and F are per-run search scratch: Parent holds the
// position (never a cell reference) from which the cell was discovered, and
// the cost fields are meaningful only to A* (G/H/F) and Dijkstra (G).
type Cell struct {
	Kind    Kind
	IsStart bool
	IsEnd   bool

	Visited bool
	Parent  *Position
	G, H, F float64
}

// Grid is a rectangular, row-major collection of cells.
type Grid struct {
	Width, Height int
	Cells         [][]Cell // Cells[row][col]
}

// MazeData owns a Grid plus denormalized start/end positions. The positions
// must always equal the positions of the cells flagged IsStart/IsEnd; the
// generator and every mutator preserve this invariant.
type MazeData struct {
	Grid  *Grid
	Start Position
	End   Position
}
