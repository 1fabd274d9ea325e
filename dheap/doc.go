// SPDX-License-Identifier: MIT
// Package: lvpath/dheap
//
// Package dheap implements an indexed d-ary min-heap: a priority queue over a
// dynamic set of distinct elements that supports O(log_d n) insertion,
// extraction of the minimum and decrease-key on an arbitrary element.
//
// Layout:
//
//   - Nodes sit in an array in heap order. The parent of slot i is
//     (i-1)/d and its children are d*i+1 .. d*i+d.
//   - Every node records its own slot. A hashtable.Map from element to node
//     locates an element in O(1), which is what makes DecreaseKey possible
//     without a linear scan and what lets Add reject duplicates.
//   - The backing array grows by a factor of 3/2 when full.
//
// Ordering:
//
//   - Priorities are compared with a caller-supplied three-way function
//     (cmp(a, b) < 0 means a is smaller). NewOrdered uses cmp.Compare for any
//     constraints.Ordered priority.
//   - Only a strictly smaller priority moves a node. Equal priorities never
//     swap, so ties leave the heap untouched.
//   - DecreaseKey only ever moves a node toward the root. It refuses a
//     priority that is not strictly smaller than the stored one.
//
// Complexity (n = Len(), d = Degree()):
//
//   - Add, DecreaseKey: O(log_d n).
//   - ExtractMin: O(d · log_d n).
//   - Min, Priority, Contains, Len: O(1).
//
// Errors:
//
//   - ErrNilHasher        constructor called without an element Hasher.
//   - ErrNilCompare       New called without a priority comparator.
//   - ErrCapacityExceeded the element index could not grow.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Elements must not change
//     identity (hash or equality) while they are queued.
package dheap
