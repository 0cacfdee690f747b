// Package render rasterizes maze grids for export: PNG-ready RGBA images and
// ASCII dumps for terminals and tests.
//
// Cell kind maps to a fill color (or rune); IsStart/IsEnd are checked before
// Kind, because a search run cycles the start/end cells' kind through
// Visited/Visiting/Solution while the flags stay fixed.
//
// The animation driver proper is out of scope — this package only serves
// non-interactive export (see cmd/mazeimage).
package render
