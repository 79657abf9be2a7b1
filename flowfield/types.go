package flowfield

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNilGrid is returned when Build receives a nil grid.
	ErrNilGrid = errors.New("flowfield: grid is nil")
	// ErrNoGoals is returned when Build receives an empty goal set.
	ErrNoGoals = errors.New("flowfield: no goal cells")
	// ErrBadGoal is returned when a goal lies outside the grid or on a
	// non-walkable cell. The wrapped message names the offending index.
	ErrBadGoal = errors.New("flowfield: unusable goal cell")
)

// Options control field construction. Zero value is never used directly;
// Build starts from defaults and applies functional options on top.
type Options struct {
	// Ctx interrupts construction between expansions.
	Ctx context.Context
	// Conn selects the movement model distances are measured in.
	Conn grid.Connectivity
}

// Option mutates Options before Build runs.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Conn: grid.Conn8,
	}
}

// WithContext interrupts a long build when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects four- or eight-way movement. Unknown values
// keep the default.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		if conn == grid.Conn4 || conn == grid.Conn8 {
			o.Conn = conn
		}
	}
}
