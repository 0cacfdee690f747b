// Package search implements the four classical pathfinding algorithms —
// BFS, DFS, A*, and Dijkstra — as resumable step engines over a privately
// owned maze copy, built for step-by-step visualization.
//
// What:
//
//   - One constructor per algorithm (NewBFS, NewDFS, NewAStar, NewDijkstra),
//     each deep-copying the maze so runs never mutate a maze referenced
//     elsewhere, plus a New(alg, maze) dispatcher.
//   - Stepper.Next() advances the search by exactly one node expansion and
//     returns a Step: a full grid snapshot, visited count, found path length,
//     elapsed wall-clock time, and done/success flags. After the run has
//     finished, Next returns nil and performs no further mutation.
//
// Ordering disciplines:
//
//   - BFS:      FIFO queue; shortest path in an unweighted grid; the
//     first-discovered parent wins (no relaxation).
//   - DFS:      LIFO stack; no shortest-path guarantee; the stack reverses
//     the canonical neighbor order, biasing expansion left/down/right/up.
//   - A*:       frontier scanned each step for minimum f = g + h with
//     h = Manhattan distance to the end; ties break to the entry
//     encountered first in the list; a neighbor's g and parent are
//     reassigned only on strict improvement, or on first discovery.
//   - Dijkstra: frontier scanned each step for minimum g (uniform edge
//     weight 1); a neighbor is enqueued only once, but its g/parent
//     may be relaxed again while it still waits in the frontier.
//
// Concurrency: none. All mutation happens synchronously inside a single
// Next() call; one Stepper is driven by exactly one caller. Switching
// algorithms or resetting requires discarding the instance and constructing
// a fresh one — instances are never reused.
//
// Errors:
//
//   - ErrNilMaze, ErrInvalidMaze: constructor precondition failures.
//   - ErrUnknownAlgorithm: New received an unrecognized Algorithm value.
//   - Search exhaustion is NOT an error: an unreachable end yields a final
//     Step with Done=true, Success=false once the frontier empties.
//
// Complexity: each Next() is O(W×H) worst case (frontier scan plus grid
// snapshot); a full run is bounded by one expansion per cell.
package search
