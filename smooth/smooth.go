// Package smooth post-processes grid paths into shorter waypoint lists.
package smooth

import (
	"github.com/katalvlaran/gridpath/grid"
)

// LineOfSight reports whether every cell on the rasterised segment from a
// to b is walkable, endpoints included. The segment is rasterised with
// Bresenham's algorithm, so a perfectly diagonal line only touches the
// diagonal cells and may skim a corner that blocks stepwise movement.
// Rasterisation follows the segment from a towards b; swapping the
// endpoints can rasterise a slightly different cell set on near-tangent
// lines. A nil grid has no walkable cells, so the answer is false.
func LineOfSight(g *grid.Grid, a, b grid.Cell) bool {
	if g == nil {
		return false
	}

	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	err := dx - dy
	for {
		if !g.Walkable(grid.Cell{X: x, Y: y}) {
			return false
		}
		if x == b.X && y == b.Y {
			return true
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Path collapses a cell path into the shortest waypoint subsequence the
// grid's sight lines allow:
//
//  1. Anchor at the first cell.
//  2. Scan the remaining cells from the far end backwards and jump to the
//     first one the anchor can see.
//  3. Re-anchor there and repeat until the final cell is reached.
//
// Scanning from the far end first is what makes the result stable: every
// cell beyond a chosen waypoint is known to be out of sight, so running
// Path on its own output changes nothing.
//
// The result is a fresh slice, never aliasing the input. It keeps both
// endpoints, never exceeds the input length, and every consecutive
// waypoint pair passes LineOfSight. Paths of fewer than three cells have
// nothing to collapse and come back as plain copies, as does any path
// when the grid is nil.
func Path(g *grid.Grid, path []grid.Cell) []grid.Cell {
	if g == nil || len(path) <= 2 {
		return append([]grid.Cell(nil), path...)
	}

	out := make([]grid.Cell, 0, len(path))
	out = append(out, path[0])

	i := 0
	for i < len(path)-1 {
		next := i + 1
		for k := len(path) - 1; k > next; k-- {
			if LineOfSight(g, path[i], path[k]) {
				next = k
				break
			}
		}
		out = append(out, path[next])
		i = next
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
