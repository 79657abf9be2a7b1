package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// BFS runs breadth-first search from start to goal over a FIFO frontier:
// 4-directional movement, every step costing exactly 1. It guarantees the
// minimum move count and visits each cell at most once.
//
// Returns:
//
//   - res: never nil. Path holds the minimum-step route (empty when the
//     goal is unreachable, which is not an error); Order lists cells in
//     visit order; Frontier snapshots the queue at termination.
//   - err: a validation sentinel for bad input, ErrOptionViolation for a
//     bad option, or ctx.Err() if the context ended mid-search (res then
//     carries the partial telemetry).
//
// Preconditions and validation (in order):
//  1. Options must all be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  4. start and goal must be walkable (ErrStartNotWalkable, ErrGoalNotWalkable).
//
// Options customization:
//
//   - WithConnectivity(Conn8): minimum move count with diagonals allowed.
//   - WithContext / WithMaxCost / WithOnExpand / WithFilterCell as usual;
//     under BFS the MaxCost cap is a depth cap, every step costing 1.
//
// Deterministic: the frontier pops FIFO and neighbors enumerate in fixed
// clockwise order, so repeated runs on an unmodified grid reproduce the
// identical path and visit order.
//
// Complexity: O(W×H) time, O(W×H) memory.
func BFS(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	s, err := newSearcher(g, start, goal, heuristic.Zero, true, grid.Conn4, opts)
	if err != nil {
		return &Result{}, err
	}

	return s.run()
}
