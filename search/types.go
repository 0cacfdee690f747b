// Package search defines the algorithm selector, the per-step result value,
// and sentinel errors for the step engines.
package search

import (
	"errors"
	"time"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// Sentinel errors for stepper construction.
var (
	// ErrNilMaze is returned when a nil maze is passed to a constructor.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrInvalidMaze is returned when the maze violates the structural
	// invariants (see grid.MazeData.Validate) a generated maze must uphold.
	ErrInvalidMaze = errors.New("search: maze violates structural invariants")

	// ErrUnknownAlgorithm is returned by New for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects one of the four step-search disciplines.
type Algorithm int

const (
	// BFS is breadth-first search (FIFO frontier).
	BFS Algorithm = iota
	// DFS is depth-first search (LIFO frontier).
	DFS
	// AStar is A* with a Manhattan-distance heuristic.
	AStar
	// Dijkstra is Dijkstra's algorithm under uniform edge weight 1.
	Dijkstra
)

// String returns the conventional display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	}
	return "unknown"
}

// Step is the observable outcome of one Next() call: everything the external
// animation driver needs to render and report without aliasing the stepper's
// internal state.
type Step struct {
	// Grid is a deep-copied snapshot of the search's working grid.
	Grid *grid.Grid

	// VisitedCount is the number of cells with the visited flag set.
	VisitedCount int

	// PathLength is the number of cells on the found start→end path,
	// endpoints inclusive; 0 until a path has been found.
	PathLength int

	// Elapsed is wall-clock time since the run was constructed.
	Elapsed time.Duration

	// Done reports that the run has terminated.
	Done bool

	// Success reports that the end was reached; meaningful only when Done.
	Success bool
}
