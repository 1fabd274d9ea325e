// Package lvpath is a small, allocation-aware toolkit for point-to-point
// shortest paths over directed graphs with non-negative arc weights.
//
// What is inside?
//
//	hashtable/ - generic chained Map and Set with insertion-order, fail-fast iteration
//	dheap/     - indexed d-ary min-heap with DecreaseKey, keyed by a hashtable.Map
//	digraph/   - Node objects with child/parent sets, WeightFunction, path checks
//	dijkstra/  - Search and ShortestPath over any node type exposing Children()
//	builder/   - seeded random planar graphs for benchmarks and tests
//	cmd/pathbench - self-check plus a timed search on a large random graph
//
// Quick example:
//
//	S ─1─► A ─2─► B ─3─► C ─16─────────► T
//	│                    │               ▲
//	│                    4               │
//	│                    ▼               6
//	└──────11──────────► D ─5─► E ───────┘
//
//	path, _ := dijkstra.ShortestPath(s, t, w, digraph.NodeHasher{})
//	// S A B C D E T, cost 21
//
// Guarantees:
//   - Containers never reorder iteration; mutation during iteration panics
//     with hashtable.ErrConcurrentModification.
//   - Search never panics on bad input; it returns a sentinel error instead.
//   - Unreachable targets yield an empty path and +Inf cost, not an error.
//
// Install:
//
//	go get github.com/katalvlaran/lvpath
package lvpath
