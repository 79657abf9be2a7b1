// Package grid models a tile world as a walkability matrix with optional
// per-cell traversal weights, and generates the legal moves that the search
// packages consume.
//
// What:
//
//   - Grid wraps a rectangular walkability matrix (plus an optional positive
//     weight matrix, default 1) behind an immutable, deep-copied snapshot.
//   - Neighbors enumerates legal moves under Conn4 or Conn8 with the step
//     cost of each move: weight(neighbor) for cardinal moves, multiplied by
//     DiagonalCost (√2) for diagonal moves.
//   - ParseMap / String translate grids to and from ASCII art for tests,
//     fixtures, and tooling.
//
// Why:
//
//   - Pathfinding: BFS, Dijkstra, and A* all read the world through this one
//     neighbor model, so cost policy lives in exactly one place.
//   - Reproducibility: the neighbor offset table has a fixed order, making
//     traversal order, and therefore search telemetry, deterministic.
//   - Safety: constructors copy their inputs and expose no mutators, so a
//     search can never observe a half-edited world.
//
// Complexity:
//
//   - New / NewWeighted / ParseMap / Clone: O(W×H) time and memory.
//   - InBounds / Walkable / WeightAt / Index / CellAt / Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWeightShape: weight matrix shape differs from walkability shape.
//   - ErrNonPositiveWeight: a weight is zero or negative.
//   - ErrBadMapRune: ParseMap met a rune outside its alphabet.
package grid
