// Package flowfield precomputes goal-directed routing for whole grids.
//
// What: a Field is the answer to "how far to the nearest goal, and which
// way" for every cell at once. One Build pays a single relaxation sweep
// from the goal set; afterwards DistanceAt, NextCell and DirectionAt are
// array lookups. That trade is the right one whenever many agents chase
// the same destination, where per-agent point searches would redo the
// same work dozens of times per tick.
//
// Why a separate package: point search answers one (start, goal) pair
// and stops as early as it can; a field deliberately relaxes everything
// and keeps the whole table. The two share the grid model, the queue and
// the cost rules, but their lifecycles differ enough that mixing them
// into one API helps neither.
//
// The build is a multi-source run of the weighted relaxation with every
// goal seeded at cost zero. Distances agree with forward point searches
// over the same movement model, including terrain weights and the
// diagonal multiplier. Direction vectors are unit length, float32, and
// zero wherever movement is impossible, which lets steering code add
// them without branching.
//
// Complexity: Build is O(W·H · log(W·H)); queries are O(1).
//
// Errors: ErrNilGrid, ErrNoGoals, ErrBadGoal at build time; queries on a
// built field never fail, they return +Inf or zero values instead.
package flowfield
