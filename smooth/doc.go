// Package smooth straightens grid paths produced by the search
// algorithms.
//
// What: a searched path visits every intermediate cell, which reads as a
// staircase when rendered or steered along. Path collapses it to the few
// waypoints that matter, keeping only the cells where the route actually
// has to turn. LineOfSight is the underlying visibility test and is
// useful on its own, for example to check whether an agent may leave its
// path early and head straight for a later waypoint.
//
// How: visibility is Bresenham rasterisation over the walkability grid.
// Smoothing anchors at the start, jumps to the furthest visible path
// cell, and repeats. Because every cell beyond a chosen waypoint has
// already been ruled out, the operation is idempotent: smoothing a
// smoothed path returns it verbatim.
//
// Guarantees of Path:
//
//   - output length never exceeds input length
//   - first and last cells are preserved
//   - output is a subsequence of the input
//   - consecutive waypoints always pass LineOfSight
//   - inputs of fewer than three cells are returned as copies
//
// Note that waypoints are generally not step-adjacent afterwards; the
// result is a route to steer along, not a cell-by-cell path. Costs along
// the smoothed route are measured by straight-line geometry, not by the
// per-cell weights the search minimised, so smoothing weighted paths can
// trade searched cost for geometric directness.
//
// Complexity: LineOfSight is O(max(|dx|,|dy|)); Path is O(n^2) sight
// checks in the worst case for an n-cell path.
package smooth
