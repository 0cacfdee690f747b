package mazegen

import "github.com/Anirdq/maze-quest-explorer-ai/grid"

// HasPath reports whether a walkable path exists from the maze's start to its
// end, using an unweighted BFS over walkable cells. The maze is not mutated.
//
// Complexity: O(W×H) time and memory.
func HasPath(m *grid.MazeData) bool {
	if m == nil || m.Grid == nil {
		return false
	}
	g := m.Grid
	seen := make(map[grid.Position]bool, g.Width*g.Height)
	queue := []grid.Position{m.Start}
	seen[m.Start] = true

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == m.End {
			return true
		}
		for _, d := range grid.Neighbors4 {
			next := grid.Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !g.IsWalkable(next) || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// EnsureSolvable verifies start→end connectivity and returns the maze
// unchanged when a path exists. Otherwise it repairs the maze in place by
// carving a direct zigzag corridor: starting from start, it repeatedly steps
// one cell toward end, preferring horizontal movement first, then vertical,
// converting every traversed non-start/non-end cell to an open passage.
//
// The repair is a fallback only; normal generation rarely triggers it.
//
// Complexity: O(W×H) for the check, O(W+H) for the repair.
func EnsureSolvable(m *grid.MazeData) *grid.MazeData {
	if HasPath(m) {
		return m
	}
	g := m.Grid
	cur := m.Start
	for cur != m.End {
		if cur.Col != m.End.Col {
			if m.End.Col > cur.Col {
				cur.Col++
			} else {
				cur.Col--
			}
		} else {
			if m.End.Row > cur.Row {
				cur.Row++
			} else {
				cur.Row--
			}
		}
		cell := g.At(cur)
		if !cell.IsStart && !cell.IsEnd {
			cell.Kind = grid.Path
		}
	}
	return m
}
