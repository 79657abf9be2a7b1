// Package heuristic supplies the pure distance estimators (Manhattan,
// Euclidean, Chebyshev) that order the A* frontier, plus Zero for plain
// Dijkstra ordering.
//
// Admissibility decides correctness: an estimator must never overestimate
// the true remaining cost under the active movement model. Manhattan is
// admissible for 4-directional unit-cost movement; Euclidean and Chebyshev
// are admissible for 8-directional movement with √2-cost diagonals. For
// picks the matching default per movement model; pairing Manhattan with
// diagonal movement remains possible but forfeits optimality, and callers
// doing it deliberately should know exactly why.
//
// All functions are stateless, allocation-free, and safe for concurrent use.
package heuristic
