package fleet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/flowfield"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/smooth"
)

// patience is how many consecutive blocked ticks an agent tolerates
// before it asks for a fresh route around the traffic.
const patience = 3

// agent is the controller's mutable record; Agent is its public snapshot.
type agent struct {
	id        uuid.UUID
	pos       grid.Cell
	goal      grid.Cell
	hasGoal   bool
	status    Status
	path      []grid.Cell
	waypoints []grid.Cell
	wait      uint8
}

// Controller owns a set of agents moving across one shared grid, one
// cell per tick. It plans routes on demand, keeps agents from stacking
// onto the same cell, and optionally steers idle agents along a shared
// flow field. All methods must be called from a single goroutine; the
// controller is a simulation core, not a concurrent service.
type Controller struct {
	g *grid.Grid
	o Options

	agents   map[uuid.UUID]*agent
	order    []uuid.UUID
	occupied map[grid.Cell]uuid.UUID
	dirty    mapset.Set[uuid.UUID]
	rally    *flowfield.Field
	tick     uint64
}

// NewController builds an empty fleet over the given grid.
func NewController(g *grid.Grid, opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Controller{
		g:        g,
		o:        o,
		agents:   make(map[uuid.UUID]*agent),
		occupied: make(map[grid.Cell]uuid.UUID),
		dirty:    mapset.New[uuid.UUID](),
	}, nil
}

// Add spawns an idle agent at the given cell and returns its id.
func (c *Controller) Add(at grid.Cell) (uuid.UUID, error) {
	if !c.g.Walkable(at) {
		return uuid.UUID{}, fmt.Errorf("%w: spawn at (%d,%d)", ErrBadCell, at.X, at.Y)
	}
	if holder, busy := c.occupied[at]; busy {
		return uuid.UUID{}, fmt.Errorf("%w: (%d,%d) held by %s", ErrCellOccupied, at.X, at.Y, holder)
	}

	id := uuid.New()
	c.agents[id] = &agent{id: id, pos: at, status: StatusIdle}
	c.order = append(c.order, id)
	c.occupied[at] = id
	c.o.Logger.Info("agent added", "id", id, "at", at)

	return id, nil
}

// Remove deletes an agent and frees its cell.
func (c *Controller) Remove(id uuid.UUID) error {
	a, ok := c.agents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}

	delete(c.occupied, a.pos)
	delete(c.agents, id)
	c.dirty.Remove(id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.o.Logger.Info("agent removed", "id", id)

	return nil
}

// SetGoal points an agent at a destination. The route is planned on the
// next Step, so goals can be handed out in bulk before a tick.
func (c *Controller) SetGoal(id uuid.UUID, goal grid.Cell) error {
	a, ok := c.agents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}
	if !c.g.Walkable(goal) {
		return fmt.Errorf("%w: goal at (%d,%d)", ErrBadCell, goal.X, goal.Y)
	}

	a.goal = goal
	a.hasGoal = true
	c.dirty.Put(id)
	c.o.Logger.Debug("goal set", "id", id, "goal", goal)

	return nil
}

// Rally builds a shared flow field toward the given cells. Agents with
// no personal goal follow it; SetGoal always takes precedence.
func (c *Controller) Rally(goals ...grid.Cell) error {
	field, err := flowfield.Build(c.g, goals, flowfield.WithConnectivity(c.o.Conn))
	if err != nil {
		return fmt.Errorf("fleet: rally rejected: %w", err)
	}

	c.rally = field
	c.o.Logger.Info("rally point set", "goals", len(goals))

	return nil
}

// ClearRally drops the shared flow field. Agents without personal goals
// go idle on the next tick.
func (c *Controller) ClearRally() { c.rally = nil }

// Agent returns a snapshot of one agent.
func (c *Controller) Agent(id uuid.UUID) (Agent, error) {
	a, ok := c.agents[id]
	if !ok {
		return Agent{}, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
	}

	return c.snapshot(a), nil
}

// Agents returns snapshots of the whole fleet in spawn order.
func (c *Controller) Agents() []Agent {
	out := make([]Agent, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.snapshot(c.agents[id]))
	}

	return out
}

// Tick reports how many Steps have run.
func (c *Controller) Tick() uint64 { return c.tick }

// Step advances the simulation by one tick and reports how many agents
// moved. Replanning happens first, then movement, both in spawn order,
// so a run with the same seed of operations always plays out the same
// way.
//
// Movement claims cells through a reservation table: an agent whose next
// cell is taken holds position as StatusWaiting and, after a few blocked
// ticks, replans around the traffic. Two agents trying to swap cells in
// a single-width corridor block each other until one is re-routed or
// removed; the controller does not resolve head-on standoffs.
func (c *Controller) Step() int {
	c.tick++

	for _, id := range c.order {
		if c.dirty.Has(id) {
			c.replan(c.agents[id])
			c.dirty.Remove(id)
		}
	}

	moved := 0
	var a *agent
	for _, id := range c.order {
		a = c.agents[id]
		switch {
		case a.hasGoal && a.pos == a.goal:
			c.arrive(a)
		case len(a.path) > 0:
			moved += c.advance(a, a.path[0], true)
		case !a.hasGoal && c.rally != nil:
			moved += c.advanceOnField(a)
		default:
			if a.status != StatusArrived {
				a.status = StatusIdle
			}
		}
	}

	return moved
}

// replan computes a fresh route for one agent. The first attempt treats
// cells held by other agents as blocked; when traffic seals the goal off
// completely, a second attempt ignores traffic so the agent can at least
// head toward the destination and queue up.
func (c *Controller) replan(a *agent) {
	if !a.hasGoal {
		a.path, a.waypoints = nil, nil
		if a.status != StatusArrived {
			a.status = StatusIdle
		}
		return
	}

	res, err := pathfind.AStar(c.g, a.pos, a.goal, c.o.Heuristic,
		pathfind.WithConnectivity(c.o.Conn),
		pathfind.WithFilterCell(func(cell grid.Cell) bool {
			holder, busy := c.occupied[cell]
			return !busy || holder == a.id || cell == a.goal
		}))
	if err != nil {
		c.o.Logger.Error("route planning failed", "id", a.id, "err", err)
		c.drop(a)
		return
	}
	if !res.Found {
		res, err = pathfind.AStar(c.g, a.pos, a.goal, c.o.Heuristic,
			pathfind.WithConnectivity(c.o.Conn))
		if err != nil || !res.Found {
			c.o.Logger.Warn("goal unreachable, dropping", "id", a.id, "goal", a.goal)
			c.drop(a)
			return
		}
	}

	a.path = res.Path[1:]
	a.waypoints = nil
	if c.o.Smooth {
		a.waypoints = smooth.Path(c.g, res.Path)
	}
	if len(a.path) > 0 {
		a.status = StatusMoving
	}
	a.wait = 0
	c.o.Logger.Debug("route planned",
		"id", a.id, "cost", res.Cost, "cells", len(res.Path), "expanded", res.Expanded)
}

// advance moves an agent one cell if the reservation table allows it.
func (c *Controller) advance(a *agent, next grid.Cell, patient bool) int {
	if holder, busy := c.occupied[next]; busy && holder != a.id {
		a.status = StatusWaiting
		if patient {
			a.wait++
			if a.wait >= patience {
				a.wait = 0
				c.dirty.Put(a.id)
				c.o.Logger.Debug("blocked too long, replanning", "id", a.id, "at", a.pos)
			}
		}
		return 0
	}

	delete(c.occupied, a.pos)
	c.occupied[next] = a.id
	a.pos = next
	if len(a.path) > 0 && a.path[0] == next {
		a.path = a.path[1:]
	}
	a.status = StatusMoving
	a.wait = 0
	if a.hasGoal && a.pos == a.goal {
		c.arrive(a)
	}

	return 1
}

// advanceOnField steers a goalless agent one cell down the shared field.
func (c *Controller) advanceOnField(a *agent) int {
	if c.rally.DistanceAt(a.pos) == 0 {
		if a.status != StatusArrived {
			a.status = StatusArrived
			c.o.Logger.Info("agent reached rally", "id", a.id, "at", a.pos, "tick", c.tick)
		}
		return 0
	}

	next, ok := c.rally.NextCell(a.pos)
	if !ok {
		a.status = StatusIdle
		return 0
	}

	// Field followers have no route of their own to repair, so blocked
	// ones just wait for the cell to clear.
	return c.advance(a, next, false)
}

// arrive parks an agent at its goal.
func (c *Controller) arrive(a *agent) {
	a.hasGoal = false
	a.path, a.waypoints = nil, nil
	a.status = StatusArrived
	a.wait = 0
	c.o.Logger.Info("agent arrived", "id", a.id, "at", a.pos, "tick", c.tick)
}

// drop abandons an agent's goal, leaving it idle in place.
func (c *Controller) drop(a *agent) {
	a.hasGoal = false
	a.path, a.waypoints = nil, nil
	a.status = StatusIdle
	a.wait = 0
}

func (c *Controller) snapshot(a *agent) Agent {
	return Agent{
		ID:        a.id,
		Pos:       a.pos,
		Goal:      a.goal,
		HasGoal:   a.hasGoal,
		Status:    a.status,
		Path:      append([]grid.Cell(nil), a.path...),
		Waypoints: append([]grid.Cell(nil), a.waypoints...),
	}
}
