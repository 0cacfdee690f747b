package render

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/Anirdq/maze-quest-explorer-ai/grid"
)

// Sentinel errors for rendering.
var (
	// ErrNilMaze is returned when the maze or its grid is nil.
	ErrNilMaze = errors.New("render: maze is nil")
	// ErrCellPixels is returned when cellPixels < 1.
	ErrCellPixels = errors.New("render: cellPixels must be at least 1")
)

// Cell fill colors, one per visual state.
var (
	colorWall      = color.RGBA{30, 30, 30, 255}
	colorPath      = color.RGBA{245, 245, 245, 255}
	colorStart     = color.RGBA{40, 180, 70, 255}
	colorEnd       = color.RGBA{100, 120, 255, 255}
	colorVisited   = color.RGBA{170, 210, 235, 255}
	colorVisiting  = color.RGBA{250, 220, 110, 255}
	colorSolution  = color.RGBA{235, 170, 60, 255}
	colorAlternate = color.RGBA{190, 140, 220, 255}
)

// cellColor maps one cell to its fill. IsStart/IsEnd win over derived kinds.
func cellColor(c grid.Cell) color.RGBA {
	if c.IsStart {
		return colorStart
	}
	if c.IsEnd {
		return colorEnd
	}
	switch c.Kind {
	case grid.Wall:
		return colorWall
	case grid.Visited:
		return colorVisited
	case grid.Visiting:
		return colorVisiting
	case grid.Solution:
		return colorSolution
	case grid.AlternatePath:
		return colorAlternate
	default:
		return colorPath
	}
}

// Image rasterizes the maze into an RGBA image with square cells of
// cellPixels a side. Returns ErrNilMaze or ErrCellPixels on bad input.
// Complexity: O(W×H×cellPixels²).
func Image(m *grid.MazeData, cellPixels int) (*image.RGBA, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}
	if cellPixels < 1 {
		return nil, ErrCellPixels
	}
	g := m.Grid
	img := image.NewRGBA(image.Rect(0, 0, g.Width*cellPixels, g.Height*cellPixels))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			fill := cellColor(g.Cells[r][c])
			for y := r * cellPixels; y < (r+1)*cellPixels; y++ {
				for x := c * cellPixels; x < (c+1)*cellPixels; x++ {
					img.SetRGBA(x, y, fill)
				}
			}
		}
	}
	return img, nil
}

// cellRune maps one cell to its ASCII representation.
func cellRune(c grid.Cell) rune {
	if c.IsStart {
		return 'S'
	}
	if c.IsEnd {
		return 'E'
	}
	switch c.Kind {
	case grid.Wall:
		return '#'
	case grid.Visited:
		return 'o'
	case grid.Visiting:
		return '+'
	case grid.Solution:
		return '*'
	case grid.AlternatePath:
		return 'x'
	default:
		return '.'
	}
}

// ASCII renders the maze as newline-separated rows of runes:
// '#' wall, '.' open, 'S' start, 'E' end, 'o' visited, '+' visiting,
// '*' solution, 'x' alternate path.
func ASCII(m *grid.MazeData) (string, error) {
	if m == nil || m.Grid == nil {
		return "", ErrNilMaze
	}
	g := m.Grid
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			b.WriteRune(cellRune(g.Cells[r][c]))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
