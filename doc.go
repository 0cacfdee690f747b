// Package mazequest generates rectangular grid mazes and animates classical
// pathfinding algorithms — BFS, DFS, A*, and Dijkstra — as resumable,
// single-step search engines built for visualization.
//
// 🚀 What is maze-quest-explorer-ai?
//
//	A small, single-threaded library that brings together:
//		• Grid model: cells, kinds, deep clones & visitation reset
//		• Maze generation: randomized recursive-backtracking lattice carve,
//		  cycle-introducing post-processing, guaranteed solvability
//		• Step engines: one node expansion per call, full grid snapshot
//		  and statistics returned on every step
//		• Multi-path search: diverse alternate start→end routes
//		• Rendering: PNG and ASCII export of mazes and search results
//
// ✨ Why choose it?
//
//   - Driver-friendly – the animation loop owns pacing; the core owns state
//   - Reproducible – every random choice flows from an injectable seed
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized in five subpackages:
//
//	grid/      — Position, Cell, Grid, MazeData and their invariants
//	mazegen/   — maze generation and connectivity validation/repair
//	search/    — the four resumable step algorithms
//	multipath/ — diverse alternate-path enumeration
//	render/    — raster and ASCII export of grids
//
// Quick sketch of the driver loop:
//
//	maze, _ := mazegen.Generate(21, 21, mazegen.WithSeed(42))
//	st, _ := search.NewBFS(maze)
//	for step := st.Next(); step != nil; step = st.Next() {
//		draw(step.Grid)             // render strictly from the snapshot
//		if step.Done {
//			report(step.Success, step.PathLength, step.VisitedCount)
//		}
//	}
//
// The presentation layer — timing, colors, controls — stays outside; it only
// consumes the values returned here.
package mazequest
