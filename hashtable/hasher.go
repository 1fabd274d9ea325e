// SPDX-License-Identifier: MIT
// Package: lvpath/hashtable
//
// hasher.go - identity capability injected into every Map and Set.

package hashtable

import "hash/maphash"

// Hasher supplies identity semantics for keys of type K.
// Implementations must be consistent: Equal(a, b) implies Hash(a) == Hash(b).
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

type hasherFunc[K any] struct {
	hash  func(K) uint64
	equal func(a, b K) bool
}

func (h hasherFunc[K]) Hash(key K) uint64 { return h.hash(key) }
func (h hasherFunc[K]) Equal(a, b K) bool { return h.equal(a, b) }

// HasherFunc adapts a pair of plain functions into a Hasher.
// It returns nil if either function is nil, so constructors reject it with ErrNilHasher.
func HasherFunc[K any](hash func(K) uint64, equal func(a, b K) bool) Hasher[K] {
	if hash == nil || equal == nil {
		return nil
	}

	return hasherFunc[K]{hash: hash, equal: equal}
}

// processSeed is shared by the built-in hashers; hash values are stable
// within one process only.
var processSeed = maphash.MakeSeed()

// ComparableHasher hashes any comparable key with hash/maphash and compares with ==.
// The zero value is ready to use.
type ComparableHasher[K comparable] struct{}

// Hash implements Hasher.
func (ComparableHasher[K]) Hash(key K) uint64 { return maphash.Comparable(processSeed, key) }

// Equal implements Hasher.
func (ComparableHasher[K]) Equal(a, b K) bool { return a == b }

// StringHasher is a Hasher for string keys.
type StringHasher struct{}

// Hash implements Hasher.
func (StringHasher) Hash(key string) uint64 { return maphash.String(processSeed, key) }

// Equal implements Hasher.
func (StringHasher) Equal(a, b string) bool { return a == b }
