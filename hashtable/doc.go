// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// Package hashtable provides a chained hash map and hash set that share one
// table, resize and iteration design, with identity semantics supplied by the
// caller through a Hasher.
//
// Storage model:
//
//   - Entries live in an arena slice and link to each other by index, never
//     by pointer: one link threads the bucket's collision chain, two more
//     (prev/next) thread a global list in insertion order.
//   - The bucket array length is always a power of two; the bucket of a key is
//     Hash(key) & mask with mask = capacity-1.
//   - Removed slots go to a free list and are reused by later inserts.
//
// Resize policy:
//
//   - Before inserting a NEW key, if Len()+1 would exceed capacity×loadFactor
//     the bucket array doubles and every live entry is rehashed by walking the
//     insertion list (the old buckets are discarded, not reused).
//   - Replacing the value of an existing key never resizes.
//
// Iteration:
//
//   - Iteration follows insertion order and is fail-fast. Every insert of a
//     new key, every removal and every Clear bumps a modification counter; an
//     Iterator compares the counter captured at creation against the current
//     one on each step and stops with ErrConcurrentModification on mismatch.
//   - Replacing a value through Put is not structural and is safe mid-iteration.
//
// Complexity:
//
//   - Put / Get / ContainsKey / Remove: O(1) average, O(chain length) worst.
//   - Resize: O(n). Clear: O(n). Iterator step: O(1).
//
// Errors:
//
//   - ErrNilHasher              constructor called without a Hasher.
//   - ErrCapacityExceeded       the table would have to grow past MaxCapacity.
//   - ErrConcurrentModification an iterator outlived a structural change.
//
// Thread safety:
//
//   - None. Map and Set are single-goroutine containers.
package hashtable
