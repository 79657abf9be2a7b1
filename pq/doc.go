// Package pq implements the priority queue backing the weighted searches:
// a binary min-heap over generic comparable values with O(1) membership,
// true decrease-key, and a total, reproducible ordering.
//
// What:
//
//   - Min[T] orders values by (priority, assignment sequence) ascending, so
//     equal priorities leave in FIFO order. The ordering is total: two runs
//     over the same operations pop identically.
//   - Enqueue rejects duplicates; Update repositions an existing value in
//     place via heap.Fix instead of accumulating stale copies.
//   - Values snapshots the remaining queue in pop order for telemetry.
//
// Why:
//
//   - Dijkstra and A* need extract-min plus decrease-key; BFS falls out of
//     the same queue because unit-cost equal priorities pop FIFO.
//   - A documented tie-break makes search telemetry and golden outputs
//     reproducible across runs and platforms.
//
// Complexity:
//
//   - Enqueue / Dequeue / Update: O(log n).
//   - Contains / Peek / Len: O(1).
//   - Values: O(n log n).
//
// Errors:
//
//   - ErrEmptyQueue: Dequeue or Peek on a drained queue.
//
// Not safe for concurrent use; each search owns its queue.
package pq
