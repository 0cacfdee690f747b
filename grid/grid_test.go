package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// buildMaze returns a 3×3 all-Path maze with start (0,0) and end (2,2).
func buildMaze(t *testing.T) *grid.MazeData {
	t.Helper()
	g, err := grid.NewGrid(3, 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Cells[r][c].Kind = grid.Path
		}
	}
	g.Cells[0][0].Kind = grid.Start
	g.Cells[0][0].IsStart = true
	g.Cells[2][2].Kind = grid.End
	g.Cells[2][2].IsEnd = true
	return &grid.MazeData{Grid: g, Start: grid.Position{Row: 0, Col: 0}, End: grid.Position{Row: 2, Col: 2}}
}

func TestNewGrid_EmptyDimensions(t *testing.T) {
	_, err := grid.NewGrid(0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.NewGrid(3, -1)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNewGrid_AllWalls(t *testing.T) {
	g, err := grid.NewGrid(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 2, g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			assert.Equal(t, grid.Wall, g.Cells[r][c].Kind)
		}
	}
}

func TestIsWalkable_BoundsAndWalls(t *testing.T) {
	m := buildMaze(t)
	m.Grid.Cells[1][1].Kind = grid.Wall

	assert.True(t, m.Grid.IsWalkable(grid.Position{Row: 0, Col: 0}), "start is walkable")
	assert.True(t, m.Grid.IsWalkable(grid.Position{Row: 2, Col: 2}), "end is walkable")
	assert.False(t, m.Grid.IsWalkable(grid.Position{Row: 1, Col: 1}), "wall is not walkable")
	assert.False(t, m.Grid.IsWalkable(grid.Position{Row: -1, Col: 0}))
	assert.False(t, m.Grid.IsWalkable(grid.Position{Row: 0, Col: 3}))
}

func TestManhattanDistance(t *testing.T) {
	a := grid.Position{Row: 0, Col: 0}
	b := grid.Position{Row: 4, Col: 4}
	assert.Equal(t, 8, grid.ManhattanDistance(a, b))
	assert.Equal(t, 8, grid.ManhattanDistance(b, a))
	assert.Equal(t, 0, grid.ManhattanDistance(a, a))
}

func TestClone_DeepIndependence(t *testing.T) {
	m := buildMaze(t)
	parent := grid.Position{Row: 0, Col: 0}
	m.Grid.Cells[1][0].Parent = &parent
	m.Grid.Cells[1][0].Visited = true
	m.Grid.Cells[1][0].G = 1

	clone := m.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, m.Start, clone.Start)
	assert.Equal(t, m.End, clone.End)
	assert.Equal(t, m.Grid.Cells[1][0], clone.Grid.Cells[1][0])

	// Mutating the clone, including its Parent position, never reaches m.
	clone.Grid.Cells[1][0].Kind = grid.Visited
	clone.Grid.Cells[1][0].Parent.Row = 9
	clone.Grid.Cells[2][2].IsEnd = false
	assert.Equal(t, grid.Path, m.Grid.Cells[1][0].Kind)
	assert.Equal(t, 0, m.Grid.Cells[1][0].Parent.Row)
	assert.True(t, m.Grid.Cells[2][2].IsEnd)
}

func TestResetVisitation_ClearsScratchAndDerivedKinds(t *testing.T) {
	m := buildMaze(t)
	m.Grid.Cells[2][0].Kind = grid.Wall
	parent := grid.Position{Row: 0, Col: 0}
	for _, p := range []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		cell := m.Grid.At(p)
		cell.Visited = true
		cell.Parent = &parent
		cell.G, cell.H, cell.F = 1, 2, 3
	}
	m.Grid.Cells[0][1].Kind = grid.Visited
	m.Grid.Cells[1][1].Kind = grid.Visiting
	m.Grid.Cells[1][2].Kind = grid.Solution
	m.Grid.Cells[0][0].Kind = grid.Visiting // start cycles through derived kinds too

	reset := m.ResetVisitation()
	require.NotNil(t, reset)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := reset.Grid.Cells[r][c]
			assert.Contains(t, []grid.Kind{grid.Wall, grid.Path, grid.Start, grid.End}, cell.Kind)
			assert.False(t, cell.Visited)
			assert.Nil(t, cell.Parent)
			assert.Zero(t, cell.G)
			assert.Zero(t, cell.H)
			assert.Zero(t, cell.F)
		}
	}
	assert.Equal(t, grid.Start, reset.Grid.Cells[0][0].Kind)
	assert.Equal(t, grid.End, reset.Grid.Cells[2][2].Kind)
	assert.Equal(t, grid.Wall, reset.Grid.Cells[2][0].Kind)
	// The original post-search maze is left untouched.
	assert.Equal(t, grid.Solution, m.Grid.Cells[1][2].Kind)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&grid.MazeData{}).Validate(), grid.ErrNilGrid)

	m := buildMaze(t)
	assert.NoError(t, m.Validate())

	noStart := m.Clone()
	noStart.Grid.Cells[0][0].IsStart = false
	assert.ErrorIs(t, noStart.Validate(), grid.ErrNoStart)

	noEnd := m.Clone()
	noEnd.Grid.Cells[2][2].IsEnd = false
	assert.ErrorIs(t, noEnd.Validate(), grid.ErrNoEnd)

	twoStarts := m.Clone()
	twoStarts.Grid.Cells[1][1].IsStart = true
	assert.ErrorIs(t, twoStarts.Validate(), grid.ErrStartEndMismatch)

	moved := m.Clone()
	moved.Start = grid.Position{Row: 1, Col: 1}
	assert.ErrorIs(t, moved.Validate(), grid.ErrStartEndMismatch)

	overlap := m.Clone()
	overlap.Grid.Cells[0][0].IsEnd = true
	overlap.Grid.Cells[2][2].IsEnd = false
	assert.ErrorIs(t, overlap.Validate(), grid.ErrStartEndOverlap)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "wall", grid.Wall.String())
	assert.Equal(t, "solution", grid.Solution.String())
	assert.Equal(t, "unknown", grid.Kind(200).String())
}
