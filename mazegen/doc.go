// Package mazegen produces randomized, guaranteed-solvable rectangular mazes
// and verifies (or repairs) start→end connectivity.
//
// What:
//
//   - Generate(width, height, opts...): randomized recursive-backtracking
//     carve over a "skip-one" lattice — only even-offset cells are graph
//     nodes, and the cell between two linked nodes is carved as the
//     connecting corridor — yielding a perfect spanning-tree maze. Start is
//     fixed at (0,0); the end is chosen uniformly among the other three
//     corners.
//   - Post-processing opens extra passages (introducing cycles and alternate
//     routes), carves a few approach corridors toward the end corner, and
//     forces at least one open orthogonal neighbor next to the end.
//   - EnsureSolvable: unweighted BFS reachability check; if the end is
//     unreachable, a direct zigzag corridor is carved from start to end,
//     preferring horizontal movement first, then vertical.
//
// Why:
//
//   - A pure spanning-tree maze has exactly one path between any two cells,
//     which is visually uninteresting and algorithmically trivial to animate;
//     the post-processing keeps searches worth watching.
//   - Generation never returns a maze without a verified walkable path.
//
// Options:
//
//   - WithSeed(seed): deterministic generation (seed ≤ 0 falls back to a
//     time-based seed, so default mazes vary run to run).
//   - WithExtraOpeningFactor(f): density of cycle-introducing openings,
//     applied as ⌊f·W·H⌋ attempts (default 0.15).
//   - WithApproachCorridors(n): corridors carved toward the end (default 3).
//
// Errors:
//
//   - ErrDimensionTooSmall: width or height < 2.
//   - ErrOptionViolation: an invalid option value was supplied.
//
// Edge cases: dimensions below ~5 starve the lattice carve of interior nodes;
// the post-processing and the validator still guarantee connectivity no
// matter how sparse the spanning carve turns out. Odd dimensions produce the
// cleanest lattices and are recommended (the practical UI range is 5–31).
package mazegen
