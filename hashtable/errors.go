// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// errors.go - sentinel errors for the hashtable package.
//
// Callers branch with errors.Is; call sites attach context with %w.

package hashtable

import "errors"

var (
	// ErrNilHasher indicates that a Map or Set was constructed without a Hasher.
	ErrNilHasher = errors.New("hashtable: hasher is nil")

	// ErrCapacityExceeded indicates that an insert needed the bucket array to
	// grow beyond MaxCapacity. The table is left unchanged.
	ErrCapacityExceeded = errors.New("hashtable: capacity exceeded")

	// ErrConcurrentModification indicates that the table was structurally
	// modified after an iterator over it was created.
	ErrConcurrentModification = errors.New("hashtable: concurrent modification during iteration")
)
