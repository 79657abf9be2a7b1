// Package grid provides the walkability-and-weight world model that the
// search packages operate on. A Grid is immutable once built: constructors
// deep-copy their inputs, and all mutating use cases go through Clone.
package grid

// Grid is a fixed-size world of walkable and blocked cells with an optional
// positive traversal weight per cell (1 everywhere by default).
// Width and Height are immutable after construction. Storage is row-major:
// the cell (x, y) lives at index y*Width + x.
type Grid struct {
	Width, Height int
	walk          []bool
	weight        []float64
}

// New constructs a Grid from a non-empty, rectangular walkability matrix,
// with every cell weighted 1. The input is deep-copied.
// Returns ErrEmptyGrid if walkable has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(walkable [][]bool) (*Grid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])

	g := &Grid{
		Width:  w,
		Height: h,
		walk:   make([]bool, w*h),
		weight: make([]float64, w*h),
	}
	for y, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.walk[y*w:(y+1)*w], row)
	}
	for i := range g.weight {
		g.weight[i] = 1
	}

	return g, nil
}

// NewWeighted constructs a Grid with a parallel positive weight matrix.
// Both inputs are deep-copied. In addition to the New errors, returns
// ErrWeightShape if the matrices disagree in shape and ErrNonPositiveWeight
// if any weight is ≤ 0. Weights of blocked cells are stored but never read.
// Complexity: O(W×H) time and memory.
func NewWeighted(walkable [][]bool, weights [][]float64) (*Grid, error) {
	g, err := New(walkable)
	if err != nil {
		return nil, err
	}
	if len(weights) != g.Height {
		return nil, ErrWeightShape
	}
	for y, row := range weights {
		if len(row) != g.Width {
			return nil, ErrWeightShape
		}
		for x, wv := range row {
			if wv <= 0 {
				return nil, ErrNonPositiveWeight
			}
			g.weight[y*g.Width+x] = wv
		}
	}

	return g, nil
}

// Clone returns an independent copy of the grid. Callers that edit maps
// between searches snapshot with Clone and hand the copy to in-flight work.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:  g.Width,
		Height: g.Height,
		walk:   make([]bool, len(g.walk)),
		weight: make([]float64, len(g.weight)),
	}
	copy(c.walk, g.walk)
	copy(c.weight, g.weight)

	return c
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Walkable reports whether c is inside the grid and traversable.
// Out-of-bounds cells are never walkable; there is no wrap-around.
// Complexity: O(1).
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.walk[c.Y*g.Width+c.X]
}

// WeightAt returns the traversal weight of c. The caller must ensure c is
// in bounds; out-of-range access panics like any slice indexing.
// Complexity: O(1).
func (g *Grid) WeightAt(c Cell) float64 {
	return g.weight[c.Y*g.Width+c.X]
}

// Index maps c to its row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// Neighbors appends every legal move out of c under the given connectivity
// to buf and returns the extended slice. A move is legal when the target is
// in bounds and walkable. Cardinal moves cost weight(neighbor); diagonal
// moves cost DiagonalCost × weight(neighbor). Passing a reused buffer keeps
// hot search loops allocation-free; pass nil to allocate.
// Neighbor order follows the fixed offset table (clockwise from north), so
// repeated calls enumerate identically.
// Complexity: O(1) per call (at most 8 probes).
func (g *Grid) Neighbors(c Cell, conn Connectivity, buf []Step) []Step {
	buf = buf[:0]
	for _, d := range conn.offsets() {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.Walkable(n) {
			continue
		}
		cost := g.weight[n.Y*g.Width+n.X]
		if d[0] != 0 && d[1] != 0 {
			cost *= DiagonalCost
		}
		buf = append(buf, Step{Cell: n, Cost: cost})
	}

	return buf
}
