// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// weight.go - arc weights stored in a two-level map keyed tail, then head.

package digraph

import (
	"fmt"

	"github.com/katalvlaran/lvpath/hashtable"
)

// WeightFunction maps arcs to float64 weights.
type WeightFunction struct {
	rows *hashtable.Map[*Node, *hashtable.Map[*Node, float64]]
	size int
}

// NewWeightFunction returns an empty WeightFunction.
func NewWeightFunction() (*WeightFunction, error) {
	rows, err := hashtable.NewMap[*Node, *hashtable.Map[*Node, float64]](NodeHasher{})
	if err != nil {
		return nil, fmt.Errorf("digraph: NewWeightFunction: %w", err)
	}

	return &WeightFunction{rows: rows}, nil
}

// Put sets the weight of tail→head, replacing any previous weight.
// The arc itself need not exist; weights and arcs are stored separately.
func (w *WeightFunction) Put(tail, head *Node, weight float64) error {
	if tail == nil || head == nil {
		return ErrNilNode
	}

	row, ok := w.rows.Get(tail)
	if !ok {
		var err error
		if row, err = hashtable.NewMap[*Node, float64](NodeHasher{}); err != nil {
			return fmt.Errorf("digraph: Put(%s, %s): %w", tail.name, head.name, err)
		}
		if _, _, err = w.rows.Put(tail, row); err != nil {
			return fmt.Errorf("digraph: Put(%s, %s): %w", tail.name, head.name, err)
		}
	}

	_, replaced, err := row.Put(head, weight)
	if err != nil {
		return fmt.Errorf("digraph: Put(%s, %s): %w", tail.name, head.name, err)
	}
	if !replaced {
		w.size++
	}

	return nil
}

// Get returns the weight of tail→head.
func (w *WeightFunction) Get(tail, head *Node) (float64, bool) {
	row, ok := w.rows.Get(tail)
	if !ok {
		return 0, false
	}

	return row.Get(head)
}

// Len returns the number of weighted arcs.
func (w *WeightFunction) Len() int { return w.size }
