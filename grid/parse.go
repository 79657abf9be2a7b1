package grid

import (
	"fmt"
	"strings"
)

// Map runes accepted by ParseMap. Digits 2–9 mark walkable cells whose
// traversal weight equals the digit; '1' and '.' are plain floor.
const (
	runeFloor = '.'
	runeWall  = '#'
	runeWallX = 'X'
)

// ParseMap builds a Grid from ASCII art, one string per row:
//
//	'.'  or '1'  walkable, weight 1
//	'#'  or 'X'  blocked
//	'2'…'9'      walkable, weight = digit value
//
// Any other rune fails with ErrBadMapRune. Empty input fails with
// ErrEmptyGrid and ragged rows with ErrNonRectangular, exactly as New does.
// ParseMap exists for tests, fixtures, and tools; production callers
// normally construct grids from their own world data via New/NewWeighted.
func ParseMap(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])

	g := &Grid{
		Width:  w,
		Height: h,
		walk:   make([]bool, w*h),
		weight: make([]float64, w*h),
	}
	for y, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range line {
			i := y*w + x
			switch {
			case r == runeFloor || r == '1':
				g.walk[i] = true
				g.weight[i] = 1
			case r == runeWall || r == runeWallX:
				g.weight[i] = 1
			case r >= '2' && r <= '9':
				g.walk[i] = true
				g.weight[i] = float64(r - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadMapRune, r, x, y)
			}
		}
	}

	return g, nil
}

// String renders the grid back into ParseMap notation: '#' for blocked
// cells, '.' for weight-1 floor, and the digit for integer weights 2–9.
// Non-integer or ≥10 weights render as '.', so only digit-weighted maps
// round-trip exactly.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			switch {
			case !g.walk[i]:
				b.WriteByte(runeWall)
			case g.weight[i] >= 2 && g.weight[i] <= 9 && g.weight[i] == float64(int(g.weight[i])):
				b.WriteByte(byte('0' + int(g.weight[i])))
			default:
				b.WriteByte(runeFloor)
			}
		}
		if y+1 < g.Height {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
