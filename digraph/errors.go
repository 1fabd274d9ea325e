// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// errors.go - sentinel errors for the digraph package.

package digraph

import "errors"

var (
	// ErrEmptyName indicates that a node was created with an empty name.
	ErrEmptyName = errors.New("digraph: node name is empty")

	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("digraph: node is nil")

	// ErrNilWeightFunction indicates that a path was priced without a WeightFunction.
	ErrNilWeightFunction = errors.New("digraph: weight function is nil")

	// ErrMissingArc indicates that two consecutive path nodes are not joined by an arc.
	ErrMissingArc = errors.New("digraph: arc not found")

	// ErrMissingWeight indicates that an arc has no weight in the weight function.
	ErrMissingWeight = errors.New("digraph: weight not found")
)
