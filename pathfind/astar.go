package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// AStar computes the minimum-cost route from start to goal with the
// frontier keyed by f = g + h(cell, goal). Closing and relaxation rules are
// identical to Dijkstra; only the frontier order differs, steering the
// search toward the goal and closing fewer cells the more informative h is.
//
// Correctness depends on h: an admissible estimator (never overestimating
// under the active movement model) preserves optimality, and a consistent
// one gives the best pruning. Passing h == nil selects heuristic.For on the
// effective movement model, which is always admissible. Pairing Manhattan
// with Conn8 movement is accepted but inadmissible: routes may come back
// longer than optimal.
//
// Edge cases:
//
//   - start == goal returns the single-cell path with zero expansions.
//   - An unreachable goal returns an empty path after the frontier is
//     exhausted; callers must treat that as "no route", never as already
//     arrived.
//
// Returns, preconditions, and options: as Dijkstra, plus the heuristic
// parameter described above.
//
// Complexity: O(W×H log(W×H)) time worst case, O(W×H) memory; an
// informative heuristic explores far less in practice.
func AStar(g *grid.Grid, start, goal grid.Cell, h heuristic.Func, opts ...Option) (*Result, error) {
	s, err := newSearcher(g, start, goal, h, false, grid.Conn8, opts)
	if err != nil {
		return &Result{}, err
	}

	return s.run()
}
