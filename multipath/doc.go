// Package multipath enumerates several diverse start→end routes through a
// maze grid, used to drive a "cycle through alternate solutions" display.
//
// What:
//
//   - FindDiversePaths performs a bounded depth-first enumeration with
//     backtracking, rotating the neighbor visit order with the current path
//     depth to bias route diversity, and accepts a candidate only if its
//     cell-overlap ratio with every previously accepted path is ≤ 0.7
//     (overlap = |intersection| / max(|A|, |B|)).
//   - When fewer than two routes are found on a small grid, a breadth-first
//     enumeration of simple paths supplements the result under the same
//     acceptance rule.
//   - Results are sorted ascending by path length, then by the number of
//     direction changes (fewer turns preferred).
//
// Why:
//
//   - Near-duplicate alternates are visually indistinguishable; the overlap
//     filter keeps only routes worth cycling through.
//
// This is a best-effort heuristic utility: candidate length and explored
// nodes are bounded internally, so it is neither guaranteed-optimal nor
// guaranteed-complete on large grids. Its only contract is returning some
// diverse valid paths when they exist.
//
// Errors:
//
//   - ErrNilGrid: the grid is nil.
//   - ErrInvalidEndpoint: start or end is out of bounds or not walkable.
//   - ErrMaxPaths: maxPaths < 1.
//
// An unreachable end is not an error; it yields an empty result.
package multipath
