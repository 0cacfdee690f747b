package search

import (
	"fmt"
	"time"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// discipline is the per-algorithm frontier policy plugged into the shared
// step engine: cost initialization, which frontier entry to pop, what happens
// when a cell is expanded, and how neighbors are discovered or relaxed.
type discipline interface {
	// init seeds algorithm-specific cost fields after the start cell has
	// been placed on the frontier.
	init(s *Stepper)
	// popIndex selects the frontier index to expand on this step.
	popIndex(s *Stepper) int
	// visit runs after a cell is popped, before its neighbors are expanded.
	visit(s *Stepper, cur grid.Position)
	// expand discovers or relaxes one orthogonal neighbor of cur.
	expand(s *Stepper, cur, nbr grid.Position)
}

// Stepper is a resumable search over a privately owned maze copy. Create one
// with NewBFS/NewDFS/NewAStar/NewDijkstra (or New) and drive it by calling
// Next until it returns nil. A Stepper must not be reused across resets and
// must be driven by a single caller.
type Stepper struct {
	algorithm Algorithm
	disc      discipline
	maze      *grid.MazeData

	open   []grid.Position
	inOpen map[grid.Position]bool

	visitedCount int
	startedAt    time.Time
	done         bool
	success      bool
}

// New constructs the stepper for the requested algorithm. Returns
// ErrUnknownAlgorithm for an unrecognized value, or the constructor errors
// below.
func New(alg Algorithm, m *grid.MazeData) (*Stepper, error) {
	switch alg {
	case BFS:
		return NewBFS(m)
	case DFS:
		return NewDFS(m)
	case AStar:
		return NewAStar(m)
	case Dijkstra:
		return NewDijkstra(m)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
}

// newStepper validates the maze, takes a run-local deep copy, seeds the
// frontier with the start cell, and applies the discipline's cost init.
// Returns ErrNilMaze or ErrInvalidMaze on precondition failure.
func newStepper(alg Algorithm, m *grid.MazeData, d discipline) (*Stepper, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	s := &Stepper{
		algorithm: alg,
		disc:      d,
		maze:      m.Clone(),
		inOpen:    make(map[grid.Position]bool),
		startedAt: time.Now(),
	}

	start := s.maze.Grid.At(s.maze.Start)
	start.Visited = true
	s.visitedCount = 1
	if !start.IsEnd {
		start.Kind = grid.Visiting
	}
	s.push(s.maze.Start)
	s.disc.init(s)

	return s, nil
}

// Algorithm reports which discipline this stepper runs.
func (s *Stepper) Algorithm() Algorithm { return s.algorithm }

// Maze exposes the stepper's working copy, e.g. for a driver that wants to
// reset the display via ResetVisitation after a run. Callers must not mutate
// it while the run is in progress.
func (s *Stepper) Maze() *grid.MazeData { return s.maze }

// Next advances the search by exactly one node expansion and returns the
// resulting Step. Once a prior call has finished the run, Next returns nil
// and performs no further mutation.
//
// Terminal outcomes: popping the end cell yields {Done, Success, PathLength};
// an exhausted frontier yields {Done, Success: false} — a normal result, not
// an error, even though a validated generated maze should never produce it.
func (s *Stepper) Next() *Step {
	if s.done {
		return nil
	}
	if len(s.open) == 0 {
		s.done = true
		return s.snapshot(0)
	}

	idx := s.disc.popIndex(s)
	cur := s.open[idx]
	s.open = append(s.open[:idx], s.open[idx+1:]...)
	delete(s.inOpen, cur)

	if cur == s.maze.End {
		length := s.markSolution()
		s.done = true
		s.success = true
		return s.snapshot(length)
	}

	s.disc.visit(s, cur)
	curCell := s.maze.Grid.At(cur)
	if !curCell.IsStart && !curCell.IsEnd {
		curCell.Kind = grid.Visited
	}

	for _, d := range grid.Neighbors4 {
		nbr := grid.Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		if !s.maze.Grid.IsWalkable(nbr) {
			continue
		}
		s.disc.expand(s, cur, nbr)
	}

	return s.snapshot(0)
}

// push appends p to the frontier and records membership.
func (s *Stepper) push(p grid.Position) {
	s.open = append(s.open, p)
	s.inOpen[p] = true
}

// markVisited sets the visited flag once, maintaining the running count.
func (s *Stepper) markVisited(p grid.Position) {
	cell := s.maze.Grid.At(p)
	if !cell.Visited {
		cell.Visited = true
		s.visitedCount++
	}
}

// markVisiting flips a discovered cell's kind to Visiting; start/end keep
// their visual treatment for the renderer.
func (s *Stepper) markVisiting(p grid.Position) {
	cell := s.maze.Grid.At(p)
	if !cell.IsStart && !cell.IsEnd {
		cell.Kind = grid.Visiting
	}
}

// setParent records the position (never a cell reference) p was discovered
// or relaxed from; the resulting back-reference tree is rooted at the start.
func (s *Stepper) setParent(p, parent grid.Position) {
	s.maze.Grid.At(p).Parent = &parent
}

// markSolution walks parent back-references from the end to the start,
// marking every intermediate cell Solution, and returns the path length in
// cells, endpoints inclusive.
func (s *Stepper) markSolution() int {
	length := 0
	cur := s.maze.End
	for {
		length++
		cell := s.maze.Grid.At(cur)
		if !cell.IsStart && !cell.IsEnd {
			cell.Kind = grid.Solution
		}
		if cur == s.maze.Start || cell.Parent == nil {
			break
		}
		cur = *cell.Parent
	}
	return length
}

// snapshot builds the observable Step for this call; the grid is deep-copied
// so the driver renders strictly from the returned value.
func (s *Stepper) snapshot(pathLength int) *Step {
	return &Step{
		Grid:         s.maze.Grid.Clone(),
		VisitedCount: s.visitedCount,
		PathLength:   pathLength,
		Elapsed:      time.Since(s.startedAt),
		Done:         s.done,
		Success:      s.success,
	}
}
