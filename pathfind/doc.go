// Package pathfind routes across grid worlds with BFS, Dijkstra, and A*,
// returning the cell path plus the telemetry visualizations and tests need.
//
// What:
//
//   - BFS: minimum move count over a FIFO frontier, 4-directional unit-cost
//     movement by default.
//   - Dijkstra: minimum total cost over a frontier keyed by cumulative cost
//     g, 8-directional weighted movement by default.
//   - AStar: Dijkstra's rules with the frontier keyed by f = g + h for an
//     injected heuristic estimator.
//   - Stepper: the same weighted engine advanced one expansion per call,
//     for frame-loop animation and time-slicing.
//
// All three entry points share one engine: BFS is the special case of unit
// step cost with a zero heuristic, Dijkstra is A* with a zero heuristic.
// Per-cell search state lives in flat row-major tables; parent links are
// indices into those tables, forming a tree rooted at the start cell, so
// path reconstruction is an index walk to a sentinel with no reference
// cycles. No state survives a call. Searches are pure functions of (grid,
// start, goal, options): rerunning on an unmodified grid reproduces the
// identical path, visit order, and frontier, byte for byte.
//
// Why:
//
//   - Agent routing: feed a walkability grid and two endpoints, move the
//     agent along the returned cells (smooth the path first if straighter
//     motion is wanted).
//   - Visualization and debugging: Result.Order and Result.Frontier replay
//     exactly what the search did, an unreachable goal included.
//   - Determinism: a documented FIFO tie-break among equal priorities makes
//     golden-output tests stable across runs and platforms.
//
// Concurrency: each call is single-threaded and runs to completion; there
// is no internal suspension. Callers with many agents dispatch calls to
// their own workers and must hand each in-flight search an immutable grid
// snapshot (grid.Clone) if the world is edited concurrently. Cancellation
// arrives via WithContext and is checked once per main-loop iteration.
//
// Complexity:
//
//   - BFS: O(W×H) time, O(W×H) memory.
//   - Dijkstra / AStar / Stepper: O(W×H log(W×H)) time, O(W×H) memory.
//
// Options:
//
//   - WithContext: cancellation/deadline, partial telemetry on stop.
//   - WithConnectivity: override the per-algorithm movement model.
//   - WithMaxCost: bound the explored cost-so-far.
//   - WithOnExpand: per-closure hook for live visualization.
//   - WithFilterCell: dynamic obstacle veto on top of the walkability grid.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds,
//     ErrStartNotWalkable, ErrGoalNotWalkable: fail-fast validation, no
//     search work performed.
//   - ErrOptionViolation: an option carried an invalid value.
//   - An unreachable goal is NOT an error: Path comes back empty with the
//     full telemetry attached, and callers must branch on that emptiness.
package pathfind
