package grid

// NewGrid constructs a width×height grid with every cell initialized to Wall.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether p lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns a pointer to the cell at p. The caller must ensure p is in
// bounds (see InBounds); out-of-range access is a programming error.
func (g *Grid) At(p Position) *Cell {
	return &g.Cells[p.Row][p.Col]
}

// IsWalkable reports whether p is in bounds and not a Wall. Every derived
// kind (Start, End, Visited, Visiting, Solution, AlternatePath) is walkable.
// Complexity: O(1).
func (g *Grid) IsWalkable(p Position) bool {
	return g.InBounds(p) && g.Cells[p.Row][p.Col].Kind != Wall
}

// ManhattanDistance returns |Δrow| + |Δcol| between a and b.
func ManhattanDistance(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Validate checks the structural invariants a generated maze must uphold:
// a non-nil grid, exactly one IsStart cell and one IsEnd cell, start ≠ end,
// and MazeData.Start/End matching the flagged cells. Returns the first
// violated sentinel error, or nil.
// Complexity: O(W×H).
func (m *MazeData) Validate() error {
	if m == nil || m.Grid == nil {
		return ErrNilGrid
	}
	starts, ends := 0, 0
	var start, end Position
	for r := 0; r < m.Grid.Height; r++ {
		for c := 0; c < m.Grid.Width; c++ {
			cell := &m.Grid.Cells[r][c]
			if cell.IsStart {
				starts++
				start = Position{Row: r, Col: c}
			}
			if cell.IsEnd {
				ends++
				end = Position{Row: r, Col: c}
			}
		}
	}
	if starts == 0 {
		return ErrNoStart
	}
	if ends == 0 {
		return ErrNoEnd
	}
	if starts > 1 || ends > 1 {
		return ErrStartEndMismatch
	}
	if start == end {
		return ErrStartEndOverlap
	}
	if start != m.Start || end != m.End {
		return ErrStartEndMismatch
	}
	return nil
}
