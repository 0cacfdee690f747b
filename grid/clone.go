package grid

// Clone returns a fully independent deep copy of the grid. Parent positions
// are copied by value so mutating the clone never reaches back into g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([][]Cell, g.Height)
	for r := 0; r < g.Height; r++ {
		cells[r] = make([]Cell, g.Width)
		copy(cells[r], g.Cells[r])
		for c := range cells[r] {
			if p := cells[r][c].Parent; p != nil {
				cp := *p
				cells[r][c].Parent = &cp
			}
		}
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Clone returns a deep copy of the maze: the grid (see Grid.Clone) and the
// denormalized start/end positions.
func (m *MazeData) Clone() *MazeData {
	if m == nil {
		return nil
	}
	return &MazeData{Grid: m.Grid.Clone(), Start: m.Start, End: m.End}
}

// ResetVisitation returns a clone of the maze with all search scratch cleared:
// Visited, Parent, and the cost fields are zeroed, and every derived kind
// (Visited/Visiting/Solution/AlternatePath) is restored to the structural kind
// implied by IsStart/IsEnd/otherwise Path. Walls are untouched.
// Complexity: O(W×H).
func (m *MazeData) ResetVisitation() *MazeData {
	clone := m.Clone()
	if clone == nil {
		return nil
	}
	for r := 0; r < clone.Grid.Height; r++ {
		for c := 0; c < clone.Grid.Width; c++ {
			cell := &clone.Grid.Cells[r][c]
			cell.Visited = false
			cell.Parent = nil
			cell.G, cell.H, cell.F = 0, 0, 0
			switch {
			case cell.Kind == Wall:
				// structural, keep
			case cell.IsStart:
				cell.Kind = Start
			case cell.IsEnd:
				cell.Kind = End
			default:
				cell.Kind = Path
			}
		}
	}
	return clone
}
