package flowfield

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/vec2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pq"
)

// noNext marks cells with no downhill neighbor: goals, walls and cells
// the goal set cannot reach.
const noNext int32 = -1

// Field is a precomputed routing table over one grid: for every cell, the
// cheapest cost to the nearest goal and the first hop of a route that
// achieves it. Build once, then answer any number of "which way from
// here" queries in O(1) without running a search per agent.
type Field struct {
	g    *grid.Grid
	conn grid.Connectivity

	dist []float64 // cost to the nearest goal per row-major index; +Inf unreachable
	next []int32   // row-major index of the downhill neighbor; noNext at goals
}

// Build runs one multi-source relaxation outward from the goal set and
// returns the resulting field. Costs follow the grid's weighted movement
// model: entering a cell costs its weight, times the diagonal multiplier
// under eight-way movement, so DistanceAt agrees with what a forward
// point search would report.
//
// Duplicate goals are allowed. A canceled context aborts construction and
// returns ctx.Err() with no field, since a half-relaxed table would
// steer agents into walls.
func Build(g *grid.Grid, goals []grid.Cell, opts ...Option) (*Field, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	for i, c := range goals {
		if !g.InBounds(c) || !g.Walkable(c) {
			return nil, fmt.Errorf("%w: goal %d at (%d,%d)", ErrBadGoal, i, c.X, c.Y)
		}
	}

	n := g.Width * g.Height
	f := &Field{
		g:    g,
		conn: o.Conn,
		dist: make([]float64, n),
		next: make([]int32, n),
	}
	for i := range f.dist {
		f.dist[i] = math.Inf(1)
		f.next[i] = noNext
	}

	open := pq.NewMin[int](n)
	for _, c := range goals {
		idx := g.Index(c)
		if f.dist[idx] == 0 {
			continue
		}
		f.dist[idx] = 0
		open.Enqueue(idx, 0)
	}

	buf := make([]grid.Step, 0, 8)
	for open.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("%w: flow field build interrupted", o.Ctx.Err())
		default:
		}

		uIdx, _, err := open.Dequeue()
		if err != nil {
			return nil, err
		}
		u := g.CellAt(uIdx)

		// Relaxation runs backwards along travel direction: an agent at
		// the neighbor would step INTO u, so the edge charges u's weight,
		// not the neighbor's.
		intoU := g.WeightAt(u)
		buf = g.Neighbors(u, o.Conn, buf)
		var st grid.Step
		for _, st = range buf {
			mult := 1.0
			if st.Cell.X != u.X && st.Cell.Y != u.Y {
				mult = grid.DiagonalCost
			}
			nd := f.dist[uIdx] + intoU*mult
			vIdx := g.Index(st.Cell)
			if nd >= f.dist[vIdx] {
				continue
			}
			f.dist[vIdx] = nd
			f.next[vIdx] = int32(uIdx)
			if open.Contains(vIdx) {
				open.Update(vIdx, nd)
			} else {
				open.Enqueue(vIdx, nd)
			}
		}
	}

	return f, nil
}

// DistanceAt returns the cheapest travel cost from c to the nearest goal,
// 0 at a goal and +Inf when c is out of bounds, not walkable, or cut off
// from every goal.
func (f *Field) DistanceAt(c grid.Cell) float64 {
	if !f.g.Walkable(c) {
		return math.Inf(1)
	}

	return f.dist[f.g.Index(c)]
}

// NextCell returns the neighbor an optimal route leaves c through. The
// second result is false at goals and wherever no route exists.
func (f *Field) NextCell(c grid.Cell) (grid.Cell, bool) {
	if !f.g.Walkable(c) {
		return grid.Cell{}, false
	}
	idx := f.next[f.g.Index(c)]
	if idx == noNext {
		return grid.Cell{}, false
	}

	return f.g.CellAt(int(idx)), true
}

// DirectionAt returns the unit steering vector from c toward the nearest
// goal, suitable for feeding straight into movement integration. Cells
// with nowhere to go, including the goals themselves, yield the zero
// vector so stationary agents need no special casing.
func (f *Field) DirectionAt(c grid.Cell) vec2.T {
	next, ok := f.NextCell(c)
	if !ok {
		return vec2.T{}
	}

	dir := vec2.T{float32(next.X - c.X), float32(next.Y - c.Y)}
	dir.Normalize()

	return dir
}

// Conn reports the movement model the field was built for.
func (f *Field) Conn() grid.Connectivity { return f.conn }
