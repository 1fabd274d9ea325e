// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// hasher.go - name-based identity for *Node.

package digraph

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// NodeHasher implements hashtable.Hasher[*Node] by node name.
type NodeHasher struct{}

// Hash returns the FNV-1a hash of the node name, or 0 for nil.
func (NodeHasher) Hash(n *Node) uint64 {
	if n == nil {
		return 0
	}

	h := uint64(fnvOffset64)
	for i := 0; i < len(n.name); i++ {
		h ^= uint64(n.name[i])
		h *= fnvPrime64
	}

	return h
}

// Equal reports whether a and b are non-nil nodes with the same name.
func (NodeHasher) Equal(a, b *Node) bool {
	return a != nil && b != nil && a.name == b.name
}
