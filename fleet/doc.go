// Package fleet runs many agents over one grid in discrete ticks.
//
// What: a Controller owns the agent registry, plans routes with the
// point search when an agent gets a personal goal, and steers goalless
// agents along a shared flow field when a rally point is set. Each Step
// is one tick: dirty agents replan, then everyone advances at most one
// cell, in spawn order.
//
// Collision handling is a reservation table, not physics: a cell holds
// one agent, movers that find their next cell taken wait in place, and
// an agent blocked for a few consecutive ticks plans a fresh route that
// treats current traffic as walls. Head-on swaps in single-width
// corridors stay stuck; resolving those needs lane rules or priorities,
// which live above this package.
//
// Everything is synchronous and single-goroutine. The controller never
// spawns goroutines and its methods must not be called concurrently;
// drive it from one game loop. Events are reported through the injected
// logger and the controller stays silent by default.
//
// Determinism: identical grids and identical operation sequences produce
// identical tick-by-tick positions. Agent ids are random, but they only
// name agents, they never order them.
package fleet
