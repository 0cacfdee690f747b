package search

import "github.com/Anirdq/maze-quest-explorer-ai/grid"

// bfsDiscipline pops the oldest frontier entry (FIFO). In an unweighted grid
// this guarantees the shortest path; the first-discovered parent wins and is
// never relaxed.
type bfsDiscipline struct{}

// NewBFS constructs a breadth-first stepper over a deep copy of m.
func NewBFS(m *grid.MazeData) (*Stepper, error) {
	return newStepper(BFS, m, bfsDiscipline{})
}

func (bfsDiscipline) init(*Stepper) {}

func (bfsDiscipline) popIndex(*Stepper) int { return 0 }

func (bfsDiscipline) visit(*Stepper, grid.Position) {}

func (bfsDiscipline) expand(s *Stepper, cur, nbr grid.Position) {
	discoverOnce(s, cur, nbr)
}

// discoverOnce is the shared BFS/DFS neighbor rule: a walkable neighbor is
// claimed by its first discoverer (marked visited and Visiting, given its
// parent, and pushed) and never touched again.
func discoverOnce(s *Stepper, cur, nbr grid.Position) {
	if s.maze.Grid.At(nbr).Visited {
		return
	}
	s.markVisited(nbr)
	s.setParent(nbr, cur)
	s.markVisiting(nbr)
	s.push(nbr)
}
