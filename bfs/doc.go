// Package bfs provides breadth-first search over any node type N whose
// Children method yields N, returning arc-count distances, parent links
// and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (arc count) from a start node.
//   - Returns a Result containing Order, Depth and Parent; Depth and Parent
//     are hashtable.Map values keyed through the caller's Hasher.
//   - OnVisit may abort the walk with an error.
//   - WithFilterNeighbor prunes individual arcs.
//   - WithMaxDepth limits the walk (d>0) or leaves it unbounded (d==0).
//
// Why
//
//   - Reachability checks in O(V + E), e.g. confirming that a target a
//     weighted search reported unreachable is in fact out of reach.
//
// Determinism
//
//	Children are enqueued in the order the node yields them. For
//	digraph.Node that is arc insertion order, so the visit sequence is
//	reproducible.
//
// Complexity (V = |Nodes|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(start, digraph.NodeHasher{},
//	    bfs.WithMaxDepth[*digraph.Node](3))
//	if err != nil {
//	    // ErrNilStart, ErrNilHasher, ErrOptionViolation, ctx.Err() or OnVisit error
//	}
//	path, err := res.PathTo(target)
package bfs
