package fleet

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

var (
	// ErrNilGrid is returned when the controller is built without a grid.
	ErrNilGrid = errors.New("fleet: grid is nil")
	// ErrBadCell is returned when a spawn point or goal lies outside the
	// grid or on a non-walkable cell.
	ErrBadCell = errors.New("fleet: cell is not walkable")
	// ErrCellOccupied is returned when a spawn point is already claimed
	// by another agent.
	ErrCellOccupied = errors.New("fleet: cell is occupied")
	// ErrUnknownAgent is returned when an agent id is not registered.
	ErrUnknownAgent = errors.New("fleet: unknown agent")
)

// Status describes what an agent did on the most recent tick.
type Status uint8

const (
	// StatusIdle means the agent has no route to follow.
	StatusIdle Status = iota
	// StatusMoving means the agent advanced along its route.
	StatusMoving
	// StatusWaiting means the next cell was occupied, so the agent held
	// its position.
	StatusWaiting
	// StatusArrived means the agent reached its destination.
	StatusArrived
)

// String implements fmt.Stringer for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusMoving:
		return "moving"
	case StatusWaiting:
		return "waiting"
	case StatusArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Agent is a read-only snapshot of one fleet member. Slices are copies;
// mutating them does not touch the controller.
type Agent struct {
	ID      uuid.UUID
	Pos     grid.Cell
	Goal    grid.Cell
	HasGoal bool
	Status  Status
	// Path holds the remaining cells to visit, next step first.
	Path []grid.Cell
	// Waypoints is the smoothed route for rendering or continuous
	// steering. Smoothing sees the grid only, never other agents, and
	// is empty when disabled.
	Waypoints []grid.Cell
}

// Options tune controller behavior. Built by NewController from defaults
// plus functional options.
type Options struct {
	// Conn is the movement model agents plan and step with.
	Conn grid.Connectivity
	// Heuristic guides route planning; nil selects the admissible
	// default for Conn.
	Heuristic heuristic.Func
	// Smooth controls whether planned routes also carry a smoothed
	// waypoint list.
	Smooth bool
	// Logger receives fleet events. Defaults to a discarding logger so
	// the controller is silent unless asked not to be.
	Logger *log.Logger
}

// Option mutates Options before the controller starts.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Conn:   grid.Conn8,
		Smooth: true,
		Logger: log.New(io.Discard),
	}
}

// WithConnectivity selects four- or eight-way movement for every agent.
// Unknown values keep the default.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		if conn == grid.Conn4 || conn == grid.Conn8 {
			o.Conn = conn
		}
	}
}

// WithHeuristic overrides the planner's estimator for every agent.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithSmoothing toggles waypoint smoothing on planned routes.
func WithSmoothing(enabled bool) Option {
	return func(o *Options) { o.Smooth = enabled }
}

// WithLogger routes fleet events to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
