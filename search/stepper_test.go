package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
	"github.com/Anirdq/maze-quest-explorer-ai/search"
)

// openMaze builds a width×height maze with every cell open, start (0,0) and
// end in the opposite corner, then re-walls the given positions.
func openMaze(t *testing.T, width, height int, walls ...grid.Position) *grid.MazeData {
	t.Helper()
	g, err := grid.NewGrid(width, height)
	require.NoError(t, err)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.Cells[r][c].Kind = grid.Path
		}
	}
	for _, w := range walls {
		g.Cells[w.Row][w.Col].Kind = grid.Wall
	}
	g.Cells[0][0].Kind = grid.Start
	g.Cells[0][0].IsStart = true
	g.Cells[height-1][width-1].Kind = grid.End
	g.Cells[height-1][width-1].IsEnd = true
	return &grid.MazeData{
		Grid:  g,
		Start: grid.Position{Row: 0, Col: 0},
		End:   grid.Position{Row: height - 1, Col: width - 1},
	}
}

// runToEnd drives the stepper to completion and returns every step.
func runToEnd(t *testing.T, s *search.Stepper) []*search.Step {
	t.Helper()
	var steps []*search.Step
	for i := 0; ; i++ {
		step := s.Next()
		if step == nil {
			break
		}
		steps = append(steps, step)
		require.Less(t, i, 10_000, "stepper did not terminate")
	}
	require.NotEmpty(t, steps)
	return steps
}

func TestConstructor_Preconditions(t *testing.T) {
	_, err := search.NewBFS(nil)
	assert.ErrorIs(t, err, search.ErrNilMaze)

	broken := openMaze(t, 5, 5)
	broken.Grid.Cells[0][0].IsStart = false
	_, err = search.NewDijkstra(broken)
	assert.ErrorIs(t, err, search.ErrInvalidMaze)
	assert.ErrorIs(t, err, grid.ErrNoStart)

	_, err = search.New(search.Algorithm(99), openMaze(t, 5, 5))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestNew_Dispatch(t *testing.T) {
	m := openMaze(t, 5, 5)
	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar, search.Dijkstra} {
		s, err := search.New(alg, m)
		require.NoError(t, err)
		assert.Equal(t, alg, s.Algorithm())
	}
}

// TestBFS_KnownScenario is the canonical example: a 5×5 maze, rows fully open
// except a single wall at (2,2). BFS must find the Manhattan-optimal route:
// 9 cells endpoints-inclusive, visiting at most the whole grid.
func TestBFS_KnownScenario(t *testing.T) {
	m := openMaze(t, 5, 5, grid.Position{Row: 2, Col: 2})
	s, err := search.NewBFS(m)
	require.NoError(t, err)

	steps := runToEnd(t, s)
	final := steps[len(steps)-1]
	assert.True(t, final.Done)
	assert.True(t, final.Success)
	assert.Equal(t, 9, final.PathLength)
	assert.LessOrEqual(t, final.VisitedCount, 25)

	// Every non-final step is a single expansion with no path yet.
	for _, step := range steps[:len(steps)-1] {
		assert.False(t, step.Done)
		assert.False(t, step.Success)
		assert.Zero(t, step.PathLength)
	}
}

func TestNext_IdempotentAfterDone(t *testing.T) {
	s, err := search.NewBFS(openMaze(t, 5, 5))
	require.NoError(t, err)
	steps := runToEnd(t, s)
	final := steps[len(steps)-1]
	require.True(t, final.Done)

	for i := 0; i < 3; i++ {
		assert.Nil(t, s.Next())
	}
	// No further mutation after completion.
	assert.Equal(t, final.Grid, s.Maze().Grid)
}

func TestNext_ExhaustedFrontierIsNotAnError(t *testing.T) {
	// Start boxed in: everything except start and end is a wall.
	g, err := grid.NewGrid(4, 4)
	require.NoError(t, err)
	g.Cells[0][0].Kind = grid.Start
	g.Cells[0][0].IsStart = true
	g.Cells[3][3].Kind = grid.End
	g.Cells[3][3].IsEnd = true
	m := &grid.MazeData{Grid: g, Start: grid.Position{Row: 0, Col: 0}, End: grid.Position{Row: 3, Col: 3}}

	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar, search.Dijkstra} {
		s, err := search.New(alg, m)
		require.NoError(t, err)

		first := s.Next()
		require.NotNil(t, first, "%v", alg)
		assert.False(t, first.Done, "%v: start expansion is not terminal", alg)
		assert.Equal(t, 1, first.VisitedCount, "%v", alg)

		second := s.Next()
		require.NotNil(t, second, "%v", alg)
		assert.True(t, second.Done, "%v", alg)
		assert.False(t, second.Success, "%v", alg)
		assert.Zero(t, second.PathLength, "%v", alg)

		assert.Nil(t, s.Next(), "%v", alg)
	}
}

func TestStep_SnapshotDoesNotAliasInternalState(t *testing.T) {
	s, err := search.NewBFS(openMaze(t, 5, 5))
	require.NoError(t, err)

	first := s.Next()
	require.NotNil(t, first)
	first.Grid.Cells[4][4].Kind = grid.Wall
	first.Grid.Cells[0][1].Visited = false

	second := s.Next()
	require.NotNil(t, second)
	assert.Equal(t, grid.End, second.Grid.Cells[4][4].Kind, "mutating a snapshot must not leak into the run")
}

func TestStep_VisitedCountMatchesSnapshot(t *testing.T) {
	s, err := search.NewDijkstra(openMaze(t, 7, 7))
	require.NoError(t, err)
	for _, step := range runToEnd(t, s) {
		counted := 0
		for r := 0; r < step.Grid.Height; r++ {
			for c := 0; c < step.Grid.Width; c++ {
				if step.Grid.Cells[r][c].Visited {
					counted++
				}
			}
		}
		assert.Equal(t, counted, step.VisitedCount)
	}
}

func TestRun_PreservesStartEndFlags(t *testing.T) {
	m := openMaze(t, 5, 5)
	for _, alg := range []search.Algorithm{search.BFS, search.DFS, search.AStar, search.Dijkstra} {
		s, err := search.New(alg, m)
		require.NoError(t, err)
		steps := runToEnd(t, s)
		final := steps[len(steps)-1]
		assert.True(t, final.Grid.Cells[0][0].IsStart, "%v", alg)
		assert.True(t, final.Grid.Cells[4][4].IsEnd, "%v", alg)
		assert.NotEqual(t, grid.Wall, final.Grid.Cells[0][0].Kind, "%v", alg)
		assert.NotEqual(t, grid.Wall, final.Grid.Cells[4][4].Kind, "%v", alg)
	}
	// The caller's maze is untouched: the stepper worked on its own copy.
	assert.Equal(t, grid.Start, m.Grid.Cells[0][0].Kind)
	assert.NoError(t, m.Validate())
}

func TestRun_SolutionMarkingAndReset(t *testing.T) {
	s, err := search.NewBFS(openMaze(t, 5, 5, grid.Position{Row: 2, Col: 2}))
	require.NoError(t, err)
	steps := runToEnd(t, s)
	final := steps[len(steps)-1]
	require.True(t, final.Success)

	solutions := 0
	for r := 0; r < final.Grid.Height; r++ {
		for c := 0; c < final.Grid.Width; c++ {
			if final.Grid.Cells[r][c].Kind == grid.Solution {
				solutions++
			}
		}
	}
	assert.Equal(t, final.PathLength-2, solutions, "intermediate path cells carry Solution; endpoints keep their flags")

	// Resetting the post-search maze restores the clean structural kinds.
	reset := s.Maze().ResetVisitation()
	for r := 0; r < reset.Grid.Height; r++ {
		for c := 0; c < reset.Grid.Width; c++ {
			cell := reset.Grid.Cells[r][c]
			assert.Contains(t, []grid.Kind{grid.Wall, grid.Path, grid.Start, grid.End}, cell.Kind)
			assert.False(t, cell.Visited)
			assert.Nil(t, cell.Parent)
		}
	}
}
