package search

import "github.com/Anirdq/maze-quest-explorer-ai/grid"

// astarDiscipline scans the frontier each step for the minimum f = g + h,
// with h the Manhattan distance to the end. The strict < comparison keeps the
// first-encountered entry on ties, matching the frontier's insertion order.
//
// The linear scan, rather than a priority queue, preserves step-by-step
// parity with the reference visual behavior; at the grid sizes involved
// (≤31×31) the cost is negligible.
type astarDiscipline struct{}

// NewAStar constructs an A* stepper over a deep copy of m.
func NewAStar(m *grid.MazeData) (*Stepper, error) {
	return newStepper(AStar, m, astarDiscipline{})
}

func (astarDiscipline) init(s *Stepper) {
	start := s.maze.Grid.At(s.maze.Start)
	h := float64(grid.ManhattanDistance(s.maze.Start, s.maze.End))
	start.G, start.H, start.F = 0, h, h
}

func (astarDiscipline) popIndex(s *Stepper) int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.maze.Grid.At(s.open[i]).F < s.maze.Grid.At(s.open[best]).F {
			best = i
		}
	}
	return best
}

// visit closes the expanded cell; for A* the visited flag means "expanded",
// not merely "discovered".
func (astarDiscipline) visit(s *Stepper, cur grid.Position) {
	s.markVisited(cur)
}

func (astarDiscipline) expand(s *Stepper, cur, nbr grid.Position) {
	g := s.maze.Grid
	cell := g.At(nbr)
	if cell.Visited {
		return // already expanded; a consistent heuristic never reopens
	}
	tentative := g.At(cur).G + 1

	if !s.inOpen[nbr] {
		cell.G = tentative
		cell.H = float64(grid.ManhattanDistance(nbr, s.maze.End))
		cell.F = cell.G + cell.H
		s.setParent(nbr, cur)
		s.markVisiting(nbr)
		s.push(nbr)
		return
	}
	// Relax only on strict improvement; equal-cost rediscoveries keep the
	// earlier parent.
	if tentative < cell.G {
		cell.G = tentative
		cell.F = cell.G + cell.H
		s.setParent(nbr, cur)
	}
}
