package multipath

import (
	"errors"
	"sort"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// Sentinel errors for diverse-path enumeration.
var (
	// ErrNilGrid is returned when the grid is nil.
	ErrNilGrid = errors.New("multipath: grid is nil")
	// ErrInvalidEndpoint is returned when start or end is out of bounds or
	// not walkable.
	ErrInvalidEndpoint = errors.New("multipath: start/end must be walkable cells")
	// ErrMaxPaths is returned when maxPaths < 1.
	ErrMaxPaths = errors.New("multipath: maxPaths must be at least 1")
)

// maxOverlapRatio is the acceptance threshold: a candidate sharing more than
// this fraction of cells with an already accepted path is a near-duplicate.
const maxOverlapRatio = 0.7

// lengthSlack bounds candidate paths to shortest+lengthSlack cells; longer
// routes wander too much to be useful alternates, and the bound keeps the
// enumeration tractable. Even slack preserves grid path-length parity.
const lengthSlack = 4

// exploreBudget caps total enumeration work so pathological grids cannot run
// unbounded.
const exploreBudget = 500_000

// smallGridCells is the largest grid for which the breadth-first supplement
// is attempted.
const smallGridCells = 225

// FindDiversePaths collects up to maxPaths distinct, mutually diverse
// start→end routes through g. See the package documentation for the
// enumeration strategy, acceptance rule, and result ordering.
//
// Returns an empty slice (and no error) when the end is unreachable.
func FindDiversePaths(g *grid.Grid, start, end grid.Position, maxPaths int) ([][]grid.Position, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if maxPaths < 1 {
		return nil, ErrMaxPaths
	}
	if !g.IsWalkable(start) || !g.IsWalkable(end) {
		return nil, ErrInvalidEndpoint
	}
	if start == end {
		return [][]grid.Position{{start}}, nil
	}

	shortest := shortestLength(g, start, end)
	if shortest == 0 {
		return nil, nil // unreachable: a normal empty outcome
	}

	e := &enumerator{
		grid:    g,
		end:     end,
		maxLen:  shortest + lengthSlack,
		max:     maxPaths,
		budget:  exploreBudget,
		visited: map[grid.Position]bool{start: true},
	}
	e.dfs(start, []grid.Position{start})

	if len(e.paths) < 2 && g.Width*g.Height <= smallGridCells {
		e.bfsSupplement(start)
	}

	sort.SliceStable(e.paths, func(i, j int) bool {
		if len(e.paths[i]) != len(e.paths[j]) {
			return len(e.paths[i]) < len(e.paths[j])
		}
		return directionChanges(e.paths[i]) < directionChanges(e.paths[j])
	})
	return e.paths, nil
}

// enumerator holds the mutable state of one FindDiversePaths call.
type enumerator struct {
	grid    *grid.Grid
	end     grid.Position
	maxLen  int
	max     int
	budget  int
	visited map[grid.Position]bool
	paths   [][]grid.Position
}

// dfs walks simple paths from cur, rotating the neighbor order with the
// current depth so sibling branches explore different directions first.
func (e *enumerator) dfs(cur grid.Position, path []grid.Position) {
	if len(e.paths) >= e.max || e.budget <= 0 {
		return
	}
	e.budget--

	if cur == e.end {
		e.accept(path)
		return
	}
	if len(path) >= e.maxLen {
		return
	}

	depth := len(path)
	for i := 0; i < len(grid.Neighbors4); i++ {
		d := grid.Neighbors4[(i+depth)%len(grid.Neighbors4)]
		next := grid.Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
		if !e.grid.IsWalkable(next) || e.visited[next] {
			continue
		}
		// Prune branches that cannot reach the end within the length bound.
		if depth+1+grid.ManhattanDistance(next, e.end) > e.maxLen {
			continue
		}
		e.visited[next] = true
		e.dfs(next, append(path, next))
		e.visited[next] = false
	}
}

// bfsSupplement enumerates simple paths in breadth-first order, feeding each
// completed route through the same diversity acceptance.
func (e *enumerator) bfsSupplement(start grid.Position) {
	e.budget = exploreBudget // fresh budget; the DFS pass may have spent its own
	queue := [][]grid.Position{{start}}
	for qi := 0; qi < len(queue) && len(e.paths) < e.max && e.budget > 0; qi++ {
		e.budget--
		path := queue[qi]
		cur := path[len(path)-1]
		if cur == e.end {
			e.accept(path)
			continue
		}
		if len(path) >= e.maxLen {
			continue
		}
		for _, d := range grid.Neighbors4 {
			next := grid.Position{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if !e.grid.IsWalkable(next) || contains(path, next) {
				continue
			}
			extended := make([]grid.Position, len(path), len(path)+1)
			copy(extended, path)
			queue = append(queue, append(extended, next))
		}
	}
}

// accept copies the candidate into the result set if it is sufficiently
// diverse from every path accepted so far.
func (e *enumerator) accept(candidate []grid.Position) {
	for _, p := range e.paths {
		if overlapRatio(candidate, p) > maxOverlapRatio {
			return
		}
	}
	cp := make([]grid.Position, len(candidate))
	copy(cp, candidate)
	e.paths = append(e.paths, cp)
}

// overlapRatio is |intersection| / max(|a|, |b|).
func overlapRatio(a, b []grid.Position) float64 {
	set := make(map[grid.Position]bool, len(a))
	for _, p := range a {
		set[p] = true
	}
	shared := 0
	for _, p := range b {
		if set[p] {
			shared++
		}
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(shared) / float64(longer)
}

// directionChanges counts the turns along a path.
func directionChanges(path []grid.Position) int {
	turns := 0
	for i := 2; i < len(path); i++ {
		prev := grid.Position{Row: path[i-1].Row - path[i-2].Row, Col: path[i-1].Col - path[i-2].Col}
		cur := grid.Position{Row: path[i].Row - path[i-1].Row, Col: path[i].Col - path[i-1].Col}
		if prev != cur {
			turns++
		}
	}
	return turns
}

// shortestLength returns the cell count of the shortest walkable start→end
// path (endpoints inclusive), or 0 if none exists. Plain unweighted BFS.
func shortestLength(g *grid.Grid, start, end grid.Position) int {
	type item struct {
		pos   grid.Position
		depth int
	}
	seen := map[grid.Position]bool{start: true}
	queue := []item{{pos: start, depth: 1}}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur.pos == end {
			return cur.depth
		}
		for _, d := range grid.Neighbors4 {
			next := grid.Position{Row: cur.pos.Row + d.Row, Col: cur.pos.Col + d.Col}
			if !g.IsWalkable(next) || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, item{pos: next, depth: cur.depth + 1})
		}
	}
	return 0
}

func contains(path []grid.Position, p grid.Position) bool {
	for _, q := range path {
		if q == p {
			return true
		}
	}
	return false
}
