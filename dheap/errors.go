// SPDX-License-Identifier: MIT
// Package: lvpath/dheap
//
// errors.go - sentinel errors for the dheap package.

package dheap

import "errors"

var (
	// ErrNilHasher indicates that a Heap was constructed without an element Hasher.
	ErrNilHasher = errors.New("dheap: hasher is nil")

	// ErrNilCompare indicates that a Heap was constructed without a priority comparator.
	ErrNilCompare = errors.New("dheap: compare function is nil")

	// ErrCapacityExceeded indicates that the element index could not grow to
	// hold one more element, in which case the heap is left unchanged, or that
	// the requested initial capacity exceeds hashtable.MaxCapacity.
	ErrCapacityExceeded = errors.New("dheap: capacity exceeded")
)
