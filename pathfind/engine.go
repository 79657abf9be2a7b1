package pathfind

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pq"
)

// Per-cell search state. A cell is closed the moment it is popped as
// current; a closed cell is never reopened or re-expanded.
const (
	stateUnseen uint8 = iota
	stateOpen
	stateClosed
)

// rootParent marks the start cell in the flat parent table.
const rootParent int32 = -1

// searcher holds the mutable state for a single search execution.
// BFS, Dijkstra, and AStar are all this one engine: BFS is unit step cost
// with a zero heuristic, Dijkstra is the weighted cost model with a zero
// heuristic, and AStar supplies a real estimator. The frontier is keyed by
// f = g + h, so with h ≡ 0 the order degrades to plain g.
type searcher struct {
	g           *grid.Grid
	o           Options
	h           heuristic.Func
	unit        bool // unit step cost (BFS) instead of weighted
	start, goal grid.Cell
	goalIdx     int

	dist   []float64 // best-known g per row-major cell index; +Inf unseen
	parent []int32   // predecessor index per cell; rootParent for the start
	state  []uint8   // stateUnseen / stateOpen / stateClosed
	open   *pq.Min[int]
	buf    []grid.Step

	res *Result
}

// newSearcher validates inputs fail-fast and builds the engine state.
// Validation order: recorded option errors, nil grid, bounds, walkability.
// No search work happens on any validation failure.
func newSearcher(g *grid.Grid, start, goal grid.Cell, h heuristic.Func, unit bool, conn grid.Connectivity, opts []Option) (*searcher, error) {
	// 1) Build options from the entry point's movement-model default and
	//    catch any invalid ones immediately.
	o := defaultOptions(conn)
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the world and endpoints.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, ErrStartOutOfBounds
	}
	if !g.InBounds(goal) {
		return nil, ErrGoalOutOfBounds
	}
	if !g.Walkable(start) {
		return nil, ErrStartNotWalkable
	}
	if !g.Walkable(goal) {
		return nil, ErrGoalNotWalkable
	}

	// 3) A nil heuristic falls back to the admissible default for the
	//    movement model in effect after options were applied.
	if h == nil {
		h = heuristic.For(o.Conn)
	}

	// 4) Allocate the flat per-cell tables. Parents are indices into the
	//    same tables rather than pointers, so reconstruction is a walk to
	//    the rootParent sentinel and nothing can form a reference cycle.
	n := g.Width * g.Height
	s := &searcher{
		g:       g,
		o:       o,
		h:       h,
		unit:    unit,
		start:   start,
		goal:    goal,
		goalIdx: g.Index(goal),
		dist:    make([]float64, n),
		parent:  make([]int32, n),
		state:   make([]uint8, n),
		open:    pq.NewMin[int](n),
		buf:     make([]grid.Step, 0, 8),
		res:     &Result{},
	}
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
		s.parent[i] = rootParent
	}

	// 5) Seed the frontier with the start at g = 0.
	si := g.Index(start)
	s.dist[si] = 0
	s.state[si] = stateOpen
	s.open.Enqueue(si, s.h(start, goal))

	return s, nil
}

// run executes the main loop to completion and assembles the Result.
// The Result is always populated, a cancelled or exhausted search included.
func (s *searcher) run() (*Result, error) {
	// start == goal short-circuits with a single-cell path and zero
	// expansions; the frontier seed is discarded unpopped and the
	// telemetry stays empty.
	if s.start == s.goal {
		s.res.Path = []grid.Cell{s.start}
		s.res.Found = true

		return s.res, nil
	}

	for s.open.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-s.o.Ctx.Done():
			s.finish()

			return s.res, s.o.Ctx.Err()
		default:
		}

		if done := s.stepOnce(); done {
			break
		}
	}
	s.finish()

	return s.res, nil
}

// stepOnce pops, closes, and relaxes exactly one cell, reporting whether
// the search is finished. Termination conditions:
//
//   - The popped cell is the goal (success; the goal is closed but its
//     neighbors are never relaxed).
//   - The frontier is empty after this step (caller observes via Len).
func (s *searcher) stepOnce() bool {
	// 1) Pop the smallest-f open cell. The queue cannot be empty here.
	idx, _, _ := s.open.Dequeue()

	// 2) Skip stale entries. With in-place priority updates these cannot
	//    occur, but the closed check keeps the closing rule explicit.
	if s.state[idx] == stateClosed {
		return false
	}

	// 3) Close it: its g is now final. Record telemetry, fire the hook.
	s.state[idx] = stateClosed
	c := s.g.CellAt(idx)
	s.res.Order = append(s.res.Order, c)
	s.res.Expanded++
	s.o.OnExpand(c, s.dist[idx])

	// 4) Popping the goal terminates the search.
	if idx == s.goalIdx {
		s.res.Found = true

		return true
	}

	// 5) Relax every legal neighbor.
	s.relax(idx, c)

	return false
}

// relax attempts to improve each neighbor of the just-closed cell u.
// Candidate g' = g(u) + stepCost; only a strictly better g' updates the
// neighbor (ties keep the incumbent parent, so equal-cost routes resolve
// by discovery order).
func (s *searcher) relax(uIdx int, u grid.Cell) {
	gU := s.dist[uIdx]
	s.buf = s.g.Neighbors(u, s.o.Conn, s.buf)

	var nd float64
	var vIdx int
	for _, st := range s.buf {
		// Dynamic veto from the caller, e.g. a cell another agent holds.
		if !s.o.Filter(st.Cell) {
			continue
		}

		vIdx = s.g.Index(st.Cell)
		if s.state[vIdx] == stateClosed {
			continue
		}

		// BFS prices every move at 1; the weighted model charges
		// weight(neighbor), √2-scaled on diagonals, via grid.Neighbors.
		if s.unit {
			nd = gU + 1
		} else {
			nd = gU + st.Cost
		}

		// Cells only reachable above the cap stay unexplored. Nothing
		// over the cap ever enters the frontier.
		if nd > s.o.MaxCost {
			continue
		}
		if nd >= s.dist[vIdx] {
			continue
		}

		s.dist[vIdx] = nd
		s.parent[vIdx] = int32(uIdx)
		key := nd + s.h(st.Cell, s.goal)
		if s.state[vIdx] == stateOpen {
			// Reposition in place (decrease-key); the entry re-ranks as
			// the newest among its equals.
			s.open.Update(vIdx, key)
		} else {
			s.state[vIdx] = stateOpen
			s.open.Enqueue(vIdx, key)
		}
	}
}

// finish snapshots the frontier and, on success, reconstructs the path by
// walking parent indices from the goal back to the rootParent sentinel.
func (s *searcher) finish() {
	remaining := s.open.Values()
	s.res.Frontier = make([]grid.Cell, 0, len(remaining))
	for _, idx := range remaining {
		s.res.Frontier = append(s.res.Frontier, s.g.CellAt(idx))
	}

	if !s.res.Found || len(s.res.Path) > 0 {
		return
	}

	s.res.Cost = s.dist[s.goalIdx]
	path := make([]grid.Cell, 0, 16)
	for at := int32(s.goalIdx); at != rootParent; at = s.parent[at] {
		path = append(path, s.g.CellAt(int(at)))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	s.res.Path = path
}
