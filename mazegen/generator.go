package mazegen

import (
	"math/rand"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// latticeOffsets are the ±2 jumps between "skip-one" lattice nodes; the cell
// exactly between two linked nodes is carved as the connecting corridor.
var latticeOffsets = [4]grid.Position{
	{Row: -2, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 0, Col: -2},
}

// Generate builds a randomized width×height maze. Guarantees: start is fixed
// at (0,0); the end is chosen uniformly at random among the three non-start
// corners; the returned maze has a verified walkable path from start to end.
//
// Returns ErrDimensionTooSmall if either dimension is < 2, or
// ErrOptionViolation for invalid options.
//
// Complexity: O(W×H) expected time and memory.
func Generate(width, height int, opts ...Option) (*grid.MazeData, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if width < 2 || height < 2 {
		return nil, ErrDimensionTooSmall
	}

	g, err := grid.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	rng := rngFromSeed(o.Seed)

	start := grid.Position{Row: 0, Col: 0}
	carveLattice(g, start, rng)

	corners := [3]grid.Position{
		{Row: 0, Col: width - 1},
		{Row: height - 1, Col: 0},
		{Row: height - 1, Col: width - 1},
	}
	end := corners[rng.Intn(len(corners))]

	g.At(start).IsStart = true
	g.At(start).Kind = grid.Start
	g.At(end).IsEnd = true
	g.At(end).Kind = grid.End

	m := &grid.MazeData{Grid: g, Start: start, End: end}

	openExtraPassages(m, o.ExtraOpeningFactor, rng)
	for i := 0; i < o.ApproachCorridors; i++ {
		carveApproachCorridor(m, rng)
	}
	guaranteeEndAdjacency(m)

	// Generation never returns a maze without a verified path.
	return EnsureSolvable(m), nil
}

// carveLattice runs randomized recursive backtracking over even-offset nodes,
// producing a perfect spanning-tree maze: exactly one simple path between any
// two lattice nodes. Neighbor visit order is reshuffled at every recursion so
// maze shape varies run to run.
func carveLattice(g *grid.Grid, node grid.Position, rng *rand.Rand) {
	g.At(node).Kind = grid.Path

	order := make([]grid.Position, len(latticeOffsets))
	copy(order, latticeOffsets[:])
	shufflePositionsInPlace(order, rng)

	for _, d := range order {
		next := grid.Position{Row: node.Row + d.Row, Col: node.Col + d.Col}
		if !g.InBounds(next) || g.At(next).Kind != grid.Wall {
			continue
		}
		// Carve the corridor cell between the two nodes, then recurse.
		between := grid.Position{Row: node.Row + d.Row/2, Col: node.Col + d.Col/2}
		g.At(between).Kind = grid.Path
		carveLattice(g, next, rng)
	}
}

// openingPairs are the opposite-neighbor pairs checked before converting an
// interior wall to a passage: horizontal, vertical, and both diagonals.
var openingPairs = [4][2]grid.Position{
	{{Row: 0, Col: -1}, {Row: 0, Col: 1}},
	{{Row: -1, Col: 0}, {Row: 1, Col: 0}},
	{{Row: -1, Col: -1}, {Row: 1, Col: 1}},
	{{Row: -1, Col: 1}, {Row: 1, Col: -1}},
}

// openExtraPassages probabilistically converts ⌊factor·W·H⌋ random interior
// walls to open cells when doing so connects two existing passages. This
// introduces cycles and alternate routes into the otherwise single-solution
// spanning tree.
func openExtraPassages(m *grid.MazeData, factor float64, rng *rand.Rand) {
	g := m.Grid
	if g.Width < 3 || g.Height < 3 {
		return // no interior cells to open
	}
	attempts := int(factor * float64(g.Width) * float64(g.Height))
	for i := 0; i < attempts; i++ {
		p := grid.Position{
			Row: 1 + rng.Intn(g.Height-2),
			Col: 1 + rng.Intn(g.Width-2),
		}
		if g.At(p).Kind != grid.Wall {
			continue
		}
		for _, pair := range openingPairs {
			a := grid.Position{Row: p.Row + pair[0].Row, Col: p.Col + pair[0].Col}
			b := grid.Position{Row: p.Row + pair[1].Row, Col: p.Col + pair[1].Col}
			if g.IsWalkable(a) && g.IsWalkable(b) {
				g.At(p).Kind = grid.Path
				break
			}
		}
	}
}

// carveApproachCorridor picks a random open cell within a small window near
// the end corner and greedily carves a Manhattan-style corridor toward the
// end, randomly alternating row and column steps.
func carveApproachCorridor(m *grid.MazeData, rng *rand.Rand) {
	g := m.Grid
	window := (g.Width + g.Height) / 6
	if window < 3 {
		window = 3
	}

	var candidates []grid.Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := grid.Position{Row: r, Col: c}
			if p != m.End && g.IsWalkable(p) && grid.ManhattanDistance(p, m.End) <= window {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	cur := candidates[rng.Intn(len(candidates))]
	for cur != m.End {
		rowDiffers := cur.Row != m.End.Row
		colDiffers := cur.Col != m.End.Col
		stepRow := rowDiffers
		if rowDiffers && colDiffers {
			stepRow = rng.Intn(2) == 0
		}
		if stepRow {
			if m.End.Row > cur.Row {
				cur.Row++
			} else {
				cur.Row--
			}
		} else {
			if m.End.Col > cur.Col {
				cur.Col++
			} else {
				cur.Col--
			}
		}
		cell := g.At(cur)
		if !cell.IsStart && !cell.IsEnd && cell.Kind == grid.Wall {
			cell.Kind = grid.Path
		}
	}
}

// guaranteeEndAdjacency forces at least one in-bounds orthogonal neighbor of
// the end cell to be open. Without it, a corridor pass that skirted the end
// could leave it sealed behind walls.
func guaranteeEndAdjacency(m *grid.MazeData) {
	g := m.Grid
	var fallback *grid.Cell
	for _, d := range grid.Neighbors4 {
		p := grid.Position{Row: m.End.Row + d.Row, Col: m.End.Col + d.Col}
		if !g.InBounds(p) {
			continue
		}
		if g.IsWalkable(p) {
			return
		}
		if fallback == nil {
			fallback = g.At(p)
		}
	}
	if fallback != nil {
		fallback.Kind = grid.Path
	}
}
