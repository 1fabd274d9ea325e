// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// node.go - named vertex with mirrored child and parent sets.

package digraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvpath/hashtable"
)

// Node is a named vertex of a directed graph.
type Node struct {
	name     string
	children *hashtable.Set[*Node]
	parents  *hashtable.Set[*Node]
}

// NewNode creates an isolated node. The name is the node's identity.
func NewNode(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	children, err := hashtable.NewSet[*Node](NodeHasher{})
	if err != nil {
		return nil, fmt.Errorf("digraph: NewNode(%q): %w", name, err)
	}
	parents, err := hashtable.NewSet[*Node](NodeHasher{})
	if err != nil {
		return nil, fmt.Errorf("digraph: NewNode(%q): %w", name, err)
	}

	return &Node{name: name, children: children, parents: parents}, nil
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "[node: nil]"
	}

	return "[node: id = " + n.name + "]"
}

// AddArc creates the arc tail→head. It reports false if the arc already
// existed. Self-loops are allowed.
func AddArc(tail, head *Node) (bool, error) {
	if tail == nil || head == nil {
		return false, ErrNilNode
	}

	added, err := tail.children.Add(head)
	if err != nil {
		return false, fmt.Errorf("digraph: AddArc(%s, %s): %w", tail.name, head.name, err)
	}
	if !added {
		return false, nil
	}
	if _, err = head.parents.Add(tail); err != nil {
		tail.children.Remove(head)

		return false, fmt.Errorf("digraph: AddArc(%s, %s): %w", tail.name, head.name, err)
	}

	return true, nil
}

// RemoveArc deletes the arc tail→head and reports whether it existed.
func RemoveArc(tail, head *Node) bool {
	if tail == nil || head == nil || !tail.children.Remove(head) {
		return false
	}
	head.parents.Remove(tail)

	return true
}

// HasChild reports whether the arc n→child exists.
func (n *Node) HasChild(child *Node) bool { return n.children.Contains(child) }

// HasParent reports whether the arc parent→n exists.
func (n *Node) HasParent(parent *Node) bool { return n.parents.Contains(parent) }

// Children yields the heads of n's outgoing arcs in the order they were added.
func (n *Node) Children() iter.Seq[*Node] { return n.children.All() }

// Parents yields the tails of n's incoming arcs in the order they were added.
func (n *Node) Parents() iter.Seq[*Node] { return n.parents.All() }

// ChildCount returns the out-degree of n.
func (n *Node) ChildCount() int { return n.children.Len() }

// ParentCount returns the in-degree of n.
func (n *Node) ParentCount() int { return n.parents.Len() }

// Clear removes every arc incident to n, in both directions. Each removal
// targets the neighbor's opposite set, never the set being ranged.
func (n *Node) Clear() {
	for child := range n.children.All() {
		child.parents.Remove(n)
	}
	for parent := range n.parents.All() {
		parent.children.Remove(n)
	}

	n.children.Clear()
	n.parents.Clear()
}
