package search

import "github.com/Anirdq/maze-quest-explorer-ai/grid"

// dfsDiscipline pops the newest frontier entry (LIFO). The stack reverses
// the canonical up/right/down/left discovery order, so expansion favors
// left, down, right, then up — biasing traversal away from BFS's sweep.
// No shortest-path guarantee.
type dfsDiscipline struct{}

// NewDFS constructs a depth-first stepper over a deep copy of m.
func NewDFS(m *grid.MazeData) (*Stepper, error) {
	return newStepper(DFS, m, dfsDiscipline{})
}

func (dfsDiscipline) init(*Stepper) {}

func (dfsDiscipline) popIndex(s *Stepper) int { return len(s.open) - 1 }

func (dfsDiscipline) visit(*Stepper, grid.Position) {}

func (dfsDiscipline) expand(s *Stepper, cur, nbr grid.Position) {
	discoverOnce(s, cur, nbr)
}
