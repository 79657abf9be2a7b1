package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Snapshot is the observable search state after one Stepper step, sized and
// copied for retention by render loops.
type Snapshot struct {
	// Step counts completed steps, starting at 1 for the first Step call.
	Step int
	// Current is the cell closed by the most recent step.
	Current grid.Cell
	// Open lists the frontier in queue order.
	Open []grid.Cell
	// Closed lists closed cells in closing order.
	Closed []grid.Cell
	// Done reports termination; Found whether the goal was reached.
	Done  bool
	Found bool
	// Path holds the reconstructed route once Found.
	Path []grid.Cell
}

// Stepper advances a weighted search one expansion at a time, so frame
// loops can animate the frontier or spread work across ticks without
// blocking on a full search. It is the time-slicing aid callers otherwise
// build around the synchronous entry points.
//
// The engine is the weighted one: for Dijkstra-style stepping pass
// heuristic.Zero. Everything is synchronous and single-goroutine; a
// Stepper must not be shared across goroutines.
type Stepper struct {
	s    *searcher
	step int
	cur  grid.Cell
	done bool
}

// NewStepper validates inputs exactly like AStar and returns a stepper
// positioned before the first expansion. A nil heuristic selects the
// admissible default for the movement model.
func NewStepper(g *grid.Grid, start, goal grid.Cell, h heuristic.Func, opts ...Option) (*Stepper, error) {
	s, err := newSearcher(g, start, goal, h, false, grid.Conn8, opts)
	if err != nil {
		return nil, err
	}

	return &Stepper{s: s}, nil
}

// Step advances exactly one expansion and returns the resulting snapshot.
// Once the search has terminated, further calls keep returning the final
// snapshot with no error and no work. Context cancellation surfaces
// ctx.Err() alongside the partial snapshot and finishes the stepper.
func (st *Stepper) Step() (Snapshot, error) {
	if st.done {
		return st.snapshot(), nil
	}

	select {
	case <-st.s.o.Ctx.Done():
		st.done = true
		st.s.finish()

		return st.snapshot(), st.s.o.Ctx.Err()
	default:
	}

	// Degenerate start == goal: resolved on the first step, zero
	// expansions, single-cell path. The frontier seed is discarded so the
	// telemetry of a zero-work search stays empty.
	if st.s.start == st.s.goal {
		_, _, _ = st.s.open.Dequeue()
		st.s.res.Path = []grid.Cell{st.s.start}
		st.s.res.Found = true
		st.s.finish()
		st.cur = st.s.start
		st.done = true
		st.step++

		return st.snapshot(), nil
	}

	if st.s.open.Len() == 0 {
		st.done = true
		st.s.finish()

		return st.snapshot(), nil
	}

	finished := st.s.stepOnce()
	st.step++
	if n := len(st.s.res.Order); n > 0 {
		st.cur = st.s.res.Order[n-1]
	}
	if finished || st.s.open.Len() == 0 {
		st.done = true
		st.s.finish()
	}

	return st.snapshot(), nil
}

// Result returns the final Result once the stepper is done, nil before.
func (st *Stepper) Result() *Result {
	if !st.done {
		return nil
	}

	return st.s.res
}

// snapshot copies the live state into an independent Snapshot.
func (st *Stepper) snapshot() Snapshot {
	openIdx := st.s.open.Values()
	open := make([]grid.Cell, 0, len(openIdx))
	for _, idx := range openIdx {
		open = append(open, st.s.g.CellAt(idx))
	}

	snap := Snapshot{
		Step:    st.step,
		Current: st.cur,
		Open:    open,
		Closed:  append([]grid.Cell(nil), st.s.res.Order...),
		Done:    st.done,
		Found:   st.s.res.Found,
	}
	if len(st.s.res.Path) > 0 {
		snap.Path = append([]grid.Cell(nil), st.s.res.Path...)
	}

	return snap
}
