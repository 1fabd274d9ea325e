// Package dijkstra computes a single-source, single-target shortest path over
// any graph whose nodes can enumerate their outgoing neighbours, with arc
// weights supplied by a separate weight function.
//
// Overview:
//
//   - The open set is an indexed d-ary heap (dheap) keyed by tentative cost,
//     so an improved route lowers the existing entry with DecreaseKey instead
//     of pushing a duplicate.
//   - The closed set, predecessor map and cost map are hashtable containers
//     built with the caller's Hasher, so node identity is whatever the caller
//     says it is.
//   - The search stops the moment the target is extracted; it never settles
//     the rest of the graph.
//
// When to use:
//
//   - Point-to-point queries on a static graph with non-negative weights.
//   - Graphs that are not stored in one place: the search only needs
//     Children() on a node and Get(tail, head) on the weight function.
//
// Semantics:
//
//   - source == target (by the Hasher) yields a one-node path of cost 0.
//   - An unreachable target yields an empty path, Found == false, cost +Inf
//     and a nil error.
//   - Settled nodes are never relaxed again, so self-loops are ignored.
//   - Ties keep the first predecessor found: a neighbour is only updated when
//     the new cost is strictly smaller.
//   - The cost map owns each node's best cost; the heap keeps a copy used for
//     ordering and is lowered in the same step.
//
// Performance and complexity (V settled nodes, E scanned arcs, d = degree):
//
//   - Time:  O(E · log_d V + V · d · log_d V)
//   - Space: O(V)
//
// Error handling (sentinel errors):
//
//   - ErrNilSource, ErrNilTarget, ErrNilWeightFunction, ErrNilHasher:
//     invalid arguments; nothing is allocated.
//   - ErrMissingWeight: an enumerated arc has no weight.
//   - ErrNegativeWeight: an arc weight is negative or NaN.
//   - Container growth failures are wrapped and returned as is
//     (hashtable.ErrCapacityExceeded, dheap.ErrCapacityExceeded).
//
// Options:
//
//   - WithDegree(d):            heap fan-out (default 4).
//   - WithInitialCapacity(n):   starting size of every container (default 16).
//   - WithLoadFactor(f):        load factor of every table (default 1.0).
//   - WithOnSettle(fn):         hook called with each extracted node and its final cost.
//
// Thread safety:
//
//   - A search owns all of its containers. The graph and weight function are
//     only read, so sequential searches may share them; concurrent searches
//     are safe only if the collaborators are.
package dijkstra
