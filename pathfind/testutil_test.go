package pathfind_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// mustParse builds a grid from ASCII art or fails the test.
func mustParse(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseMap(lines)
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}

	return g
}

// pathCost recomputes a path's total cost from the grid's own step costs,
// independent of the engine's bookkeeping.
func pathCost(t *testing.T, g *grid.Grid, path []grid.Cell) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("path step %d is not a single move: %v -> %v", i, path[i-1], path[i])
		}
		cost := g.WeightAt(path[i])
		if dx != 0 && dy != 0 {
			cost *= math.Sqrt2
		}
		total += cost
	}

	return total
}

// assertContinuous fails unless every path cell is walkable and adjacent to
// its predecessor under the given connectivity.
func assertContinuous(t *testing.T, g *grid.Grid, path []grid.Cell, conn grid.Connectivity) {
	t.Helper()
	for i, c := range path {
		if !g.Walkable(c) {
			t.Fatalf("path cell %d = %v is not walkable", i, c)
		}
		if i == 0 {
			continue
		}
		dx, dy := abs(c.X-path[i-1].X), abs(c.Y-path[i-1].Y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			t.Fatalf("path cells %d..%d are not adjacent: %v -> %v", i-1, i, path[i-1], c)
		}
		if conn == grid.Conn4 && dx+dy != 1 {
			t.Fatalf("path step %d is diagonal under Conn4: %v -> %v", i, path[i-1], c)
		}
	}
}

// groundTruthDist is an independent 4-directional unit-cost BFS used as the
// reference oracle: a plain slice queue with none of the engine's
// machinery. Returns -1 for unreachable cells.
func groundTruthDist(g *grid.Grid, start grid.Cell) map[grid.Cell]int {
	dist := map[grid.Cell]int{start: 0}
	queue := []grid.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			next := grid.Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
			if !g.Walkable(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}

	return dist
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
