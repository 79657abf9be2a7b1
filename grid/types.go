// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrWeightShape indicates the weight matrix dimensions differ from the walkability matrix.
	ErrWeightShape = errors.New("grid: weight matrix must match walkability dimensions")
	// ErrNonPositiveWeight indicates a weight cell holds a zero or negative value.
	ErrNonPositiveWeight = errors.New("grid: weights must be positive")
	// ErrBadMapRune indicates an unrecognized rune in an ASCII map.
	ErrBadMapRune = errors.New("grid: unrecognized map rune")
)

// DiagonalCost is the step-cost multiplier for diagonal moves under Conn8.
// A diagonal step into a neighbor costs DiagonalCost × weight(neighbor).
const DiagonalCost = math.Sqrt2

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offset table for the connectivity, in the
// fixed clockwise-from-north order that all traversals share. Relying on one
// table keeps neighbor enumeration order, and therefore visit order, stable.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Cell is an integer grid coordinate. X grows rightward, Y grows downward.
type Cell struct {
	X, Y int
}

// Step is one legal move out of a cell: the neighbor entered and the cost of
// entering it (weight(neighbor), scaled by DiagonalCost for diagonal moves).
type Step struct {
	Cell Cell
	Cost float64
}
