// Package heuristic provides the distance estimators used to order the A*
// frontier. All estimators are pure functions of two cells.
package heuristic

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Func estimates the cost remaining between two cells. A* requires the
// estimate to never exceed the true remaining cost under the active movement
// model (admissibility), or the returned path may not be optimal.
type Func func(a, b grid.Cell) float64

// Manhattan returns |dx| + |dy|.
// Admissible for 4-directional unit-cost movement only: with diagonals
// allowed it overestimates (a single √2 step covers what Manhattan prices
// at 2) and A* loses its optimality guarantee.
func Manhattan(a, b grid.Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Euclidean returns sqrt(dx² + dy²), the straight-line distance.
// Admissible for both movement models; under 8-directional movement with
// √2-cost diagonals it is the tighter of the admissible estimators here.
func Euclidean(a, b grid.Cell) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns max(|dx|, |dy|), the number of moves a king needs.
// Admissible for 8-directional movement with √2-cost diagonals (each move
// reduces the larger axis gap by at most one).
func Chebyshev(a, b grid.Cell) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}

// Zero estimates nothing, turning A* into Dijkstra.
func Zero(_, _ grid.Cell) float64 { return 0 }

// For returns the default admissible estimator for the movement model:
// Manhattan under Conn4, Euclidean under Conn8. Callers wanting a different
// pairing pass the estimator explicitly.
func For(conn grid.Connectivity) Func {
	if conn == grid.Conn8 {
		return Euclidean
	}

	return Manhattan
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
