// Package pathfind defines the options, result telemetry, and sentinel
// errors shared by the grid search algorithms.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search invocation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("pathfind: goal cell out of bounds")

	// ErrStartNotWalkable indicates the start cell is blocked.
	ErrStartNotWalkable = errors.New("pathfind: start cell is not walkable")

	// ErrGoalNotWalkable indicates the goal cell is blocked.
	ErrGoalNotWalkable = errors.New("pathfind: goal cell is not walkable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Result carries the outcome and telemetry of one search invocation.
// Search functions never return a nil Result: on validation errors it is
// empty, and on an exhausted frontier (unreachable goal) it holds the full
// telemetry with Found == false. An unreachable goal is not an error, and
// an empty Path must never be dereferenced as a first waypoint.
type Result struct {
	// Path is the ordered cell sequence from start to goal inclusive.
	// Empty means unreachable.
	Path []grid.Cell

	// Cost is the total path cost (0 when unreachable).
	Cost float64

	// Found reports whether the goal was reached.
	Found bool

	// Order lists closed cells in closing order, the goal included,
	// for step-through visualization and determinism assertions.
	Order []grid.Cell

	// Frontier snapshots the open set at termination, in queue order.
	Frontier []grid.Cell

	// Expanded is the number of closed cells (== len(Order)).
	Expanded int
}

// Option configures a search via functional arguments. Invalid values are
// recorded internally and surfaced as ErrOptionViolation when the search
// runs, before any work begins.
type Option func(*Options)

// Options holds the tunable parameters shared by BFS, Dijkstra, and AStar.
// Each entry point seeds its own movement-model default (Conn4 for BFS,
// Conn8 for the weighted searches) before applying options.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per main-loop
	// iteration. On cancellation the partial Result is returned with
	// ctx.Err().
	Ctx context.Context

	// Conn selects the movement model for this search.
	Conn grid.Connectivity

	// MaxCost caps the cost-so-far explored; cells only reachable above
	// the cap are treated as unreachable. Default +Inf.
	MaxCost float64

	// OnExpand is called when a cell is closed, with its final cost.
	OnExpand func(c grid.Cell, cost float64)

	// Filter can veto cells by returning false, e.g. for dynamic
	// obstacles the walkability matrix does not know about. Called for
	// each candidate neighbor.
	Filter func(c grid.Cell) bool

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns Options seeded for the given movement model.
func defaultOptions(conn grid.Connectivity) Options {
	return Options{
		Ctx:      context.Background(),
		Conn:     conn,
		MaxCost:  math.Inf(1),
		OnExpand: func(grid.Cell, float64) {},
		Filter:   func(grid.Cell) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity overrides the movement model the entry point seeded.
// BFS under Conn8 still minimizes move count; the weighted searches under
// Conn4 simply never take diagonals.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		if conn != grid.Conn4 && conn != grid.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, conn)

			return
		}
		o.Conn = conn
	}
}

// WithMaxCost caps the explored cost-so-far.
//
//	c > 0:  explore cells reachable within cost c
//	c == 0: only the start itself
//	c < 0:  invalid, surfaces ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, c)

			return
		}
		o.MaxCost = c
	}
}

// WithOnExpand registers a callback fired as each cell is closed.
func WithOnExpand(fn func(c grid.Cell, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithFilterCell skips candidate cells when fn returns false.
func WithFilterCell(fn func(c grid.Cell) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}
