package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Dijkstra computes the minimum-cost route from start to goal with the
// frontier keyed by cumulative cost g: 8-directional movement, cardinal
// steps costing weight(neighbor) and diagonal steps √2 × weight(neighbor).
// Optimal for any grid, all weights being positive by construction.
//
// The classic closing discipline applies: the cheapest open cell is popped
// and closed, stale entries are skipped, and each neighbor relaxation
// updates the frontier only on a strict improvement. Equal-priority entries
// pop in insertion order, so results are reproducible run to run.
//
// Returns:
//
//   - res: never nil. Path is empty when the goal is unreachable (not an
//     error); Cost is the total route cost; Order and Frontier carry the
//     closed sequence and the open set at termination.
//   - err: a validation sentinel, ErrOptionViolation, or ctx.Err() for a
//     context that ended mid-search (res then holds partial telemetry).
//
// Preconditions and validation (in order): as BFS.
//
// Options customization:
//
//   - WithConnectivity(Conn4): cardinal-only movement.
//   - WithMaxCost(c): cells only reachable above cost c stay unexplored.
//   - WithContext / WithOnExpand / WithFilterCell as usual.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Dijkstra(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	s, err := newSearcher(g, start, goal, heuristic.Zero, false, grid.Conn8, opts)
	if err != nil {
		return &Result{}, err
	}

	return s.run()
}
