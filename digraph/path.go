// SPDX-License-Identifier: MIT
// Package: lvpath/digraph
//
// path.go - checks and pricing for node sequences.

package digraph

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// IsValidPath reports whether every consecutive pair in path is joined by
// an arc. Empty and single-node paths are valid; nil nodes are not.
func IsValidPath(path []*Node) bool {
	for i, n := range path {
		if n == nil {
			return false
		}
		if i > 0 && !path[i-1].HasChild(n) {
			return false
		}
	}

	return true
}

// PathCost returns the sum of arc weights along path. It fails on the first
// missing arc or missing weight.
func PathCost(path []*Node, w *WeightFunction) (float64, error) {
	if w == nil {
		return 0, ErrNilWeightFunction
	}

	var cost float64
	for i := 1; i < len(path); i++ {
		if err := checkLink(path[i-1], path[i], w); err != nil {
			return 0, err
		}
		weight, _ := w.Get(path[i-1], path[i])
		cost += weight
	}

	return cost, nil
}

// ValidatePath checks every link of path and returns all failures together,
// or nil when the path is valid and fully weighted.
func ValidatePath(path []*Node, w *WeightFunction) error {
	if w == nil {
		return ErrNilWeightFunction
	}

	var result *multierror.Error
	for i := 1; i < len(path); i++ {
		if err := checkLink(path[i-1], path[i], w); err != nil {
			result = multierror.Append(result, fmt.Errorf("link %d: %w", i, err))
		}
	}

	return result.ErrorOrNil()
}

func checkLink(tail, head *Node, w *WeightFunction) error {
	switch {
	case tail == nil || head == nil:
		return ErrNilNode
	case !tail.HasChild(head):
		return fmt.Errorf("%w: %s -> %s", ErrMissingArc, tail.name, head.name)
	}
	if _, ok := w.Get(tail, head); !ok {
		return fmt.Errorf("%w: %s -> %s", ErrMissingWeight, tail.name, head.name)
	}

	return nil
}
