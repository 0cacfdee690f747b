package search

import (
	"math"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// dijkstraDiscipline scans the frontier each step for the minimum g under
// uniform edge weight 1 — behaviorally equivalent to BFS's shortest-path
// result, but arrived at via relaxation rather than level order. A neighbor
// is enqueued only the first time it is discovered; its g/parent may still
// be relaxed on later observations while it waits in the frontier.
type dijkstraDiscipline struct{}

// NewDijkstra constructs a Dijkstra stepper over a deep copy of m.
func NewDijkstra(m *grid.MazeData) (*Stepper, error) {
	return newStepper(Dijkstra, m, dijkstraDiscipline{})
}

// init sets every cell's cost-so-far to +∞ except the start at 0.
func (dijkstraDiscipline) init(s *Stepper) {
	g := s.maze.Grid
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			g.Cells[r][c].G = math.Inf(1)
		}
	}
	g.At(s.maze.Start).G = 0
}

func (dijkstraDiscipline) popIndex(s *Stepper) int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.maze.Grid.At(s.open[i]).G < s.maze.Grid.At(s.open[best]).G {
			best = i
		}
	}
	return best
}

func (dijkstraDiscipline) visit(s *Stepper, cur grid.Position) {
	s.markVisited(cur)
}

func (dijkstraDiscipline) expand(s *Stepper, cur, nbr grid.Position) {
	g := s.maze.Grid
	cell := g.At(nbr)
	if cell.Visited {
		return // distance finalized
	}
	if tentative := g.At(cur).G + 1; tentative < cell.G {
		cell.G = tentative
		s.setParent(nbr, cur)
	}
	if !s.inOpen[nbr] {
		s.markVisiting(nbr)
		s.push(nbr)
	}
}
