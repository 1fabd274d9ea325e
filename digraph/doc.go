// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// Package digraph provides a small directed-graph vocabulary for the
// shortest-path search: named nodes that know their children and parents,
// a weight function keyed by arc, and helpers that check and price paths.
//
// Identity:
//
//   - Two nodes are the same node iff their names are equal. NodeHasher
//     hashes a node by its name (64-bit FNV-1a) and is the Hasher every
//     container in this package is built with.
//   - A nil *Node hashes to 0 and is equal to nothing, not even another nil.
//
// Structure:
//
//   - Each Node keeps a child set and a parent set (hashtable.Set[*Node]).
//     AddArc and RemoveArc update both ends, so the two sets always mirror
//     each other.
//   - WeightFunction stores one float64 per arc in a two-level
//     hashtable.Map, tail first.
//
// Paths:
//
//   - IsValidPath reports whether every consecutive pair is an arc.
//   - PathCost sums arc weights and stops at the first broken link.
//   - ValidatePath reports every broken link at once as a multierror.
//
// Thread safety:
//
//   - Nothing here is safe for concurrent mutation. Read-only sharing across
//     sequential searches is fine.
package digraph
