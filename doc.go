// Package gridpath is your in-memory toolkit for moving things across
// 2D grids — from a single shortest path to a whole fleet of agents
// sharing one map.
//
// 🚀 What is gridpath?
//
//	A small, deterministic pathfinding library that brings together:
//		• Grids: walkability + terrain weights, ASCII map parsing & rendering
//		• Search: BFS, Dijkstra and A* as one engine with swappable pieces
//		• Heuristics: Manhattan, Euclidean, Chebyshev — admissible by construction
//		• Telemetry: visit order, frontier and expansion counts on every run
//		• Smoothing: Bresenham line-of-sight waypoint reduction
//		• Flow fields: one build, O(1) "which way" answers for every cell
//		• Fleet: tick-based multi-agent movement with collision reservations
//
// ✨ Why choose gridpath?
//
//   - Deterministic – same grid, same query, same answer, every run
//   - Honest failures – an unreachable goal is a result, not an error
//   - Observable – every search reports what it explored and what it cost
//   - Composable – heuristics are plain functions, options are plain options
//
// Everything is organized under focused subpackages:
//
//	grid/      — the immutable world: bounds, walkability, weights, neighbors
//	pq/        — generic min-heap priority queue with stable FIFO tie-breaks
//	heuristic/ — distance estimators and the default pairing per movement model
//	pathfind/  — BFS / Dijkstra / A* point searches and the step-by-step Stepper
//	smooth/    — line-of-sight checks and path straightening
//	flowfield/ — multi-source distance + direction fields for crowds
//	fleet/     — agents, goals, rally points and the tick loop
//
// Quick ASCII example:
//
//	S . # . .        S is the start, G the goal, # a wall;
//	. # . # .        digits would mark heavier terrain.
//	. # . . G
//
//	g, _ := grid.ParseMap([]string{"..#..", ".#.#.", ".#..."})
//	res, _ := pathfind.AStar(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 2}, nil)
//
// Movement is four- or eight-way; diagonals cost √2 times the terrain
// weight, so geometry stays honest and A* estimates stay admissible.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
