// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// random_graph.go - RandomGraph(nodes, arcs) constructor.
//
// Model:
//   - Node i is named cfg.idFn(i) and placed uniformly inside cfg.bound.
//   - Each of the `arcs` draws picks tail and head uniformly (self-loops and
//     repeats allowed). A repeated draw keeps the single arc and overwrites
//     its weight, so Weights.Len() ≤ arcs.
//
// Determinism:
//   - Draw order is fixed: all node positions first (index asc), then arcs
//     (tail index, head index, weight) in draw order.
//
// Complexity:
//   - Time:  O(nodes + arcs) expected.
//   - Space: O(nodes + arcs).

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvpath/digraph"
	"github.com/katalvlaran/lvpath/hashtable"
)

const (
	methodRandomGraph = "RandomGraph"
	minRandomNodes    = 1
)

// Graph is a generated graph: its nodes in index order, the weight of every
// arc, and the position of every node.
type Graph struct {
	Nodes   []*digraph.Node
	Weights *digraph.WeightFunction
	Points  *hashtable.Map[*digraph.Node, orb.Point]
}

// RandomGraph builds a graph of `nodes` nodes and `arcs` random arc draws.
//
// Errors:
//   - ErrTooFewNodes     nodes < 1.
//   - ErrNegativeArcs    arcs < 0.
//   - ErrNeedRandSource  no WithSeed/WithRand option.
//   - ErrDuplicateName   the name scheme repeated a name.
func RandomGraph(nodes, arcs int, opts ...BuilderOption) (*Graph, error) {
	// 1) Validate parameters; nothing is allocated on invalid input.
	if nodes < minRandomNodes {
		return nil, builderErrorf(methodRandomGraph, ErrTooFewNodes, "nodes=%d < min=%d", nodes, minRandomNodes)
	}
	if arcs < 0 {
		return nil, builderErrorf(methodRandomGraph, ErrNegativeArcs, "arcs=%d", arcs)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomGraph, ErrNeedRandSource, "no seed")
	}

	// 2) Allocate containers.
	weights, err := digraph.NewWeightFunction()
	if err != nil {
		return nil, builderErrorf(methodRandomGraph, err, "weights")
	}
	points, err := hashtable.NewMap[*digraph.Node, orb.Point](digraph.NodeHasher{},
		hashtable.WithInitialCapacity(nodes))
	if err != nil {
		return nil, builderErrorf(methodRandomGraph, err, "points")
	}
	g := &Graph{Nodes: make([]*digraph.Node, nodes), Weights: weights, Points: points}

	// 3) Create and place nodes.
	for i := range g.Nodes {
		name := cfg.idFn(i)
		n, err := digraph.NewNode(name)
		if err != nil {
			return nil, builderErrorf(methodRandomGraph, err, "NewNode(%d)", i)
		}
		_, replaced, err := points.Put(n, cfg.randomPoint())
		if err != nil {
			return nil, builderErrorf(methodRandomGraph, err, "place %s", name)
		}
		if replaced {
			return nil, builderErrorf(methodRandomGraph, ErrDuplicateName, "index %d: %q", i, name)
		}
		g.Nodes[i] = n
	}

	// 4) Draw arcs.
	for ; arcs > 0; arcs-- {
		tail, head := g.Choose(cfg.rng), g.Choose(cfg.rng)
		a, _ := points.Get(tail)
		b, _ := points.Get(head)

		if _, err = digraph.AddArc(tail, head); err != nil {
			return nil, builderErrorf(methodRandomGraph, err, "AddArc(%s, %s)", tail.Name(), head.Name())
		}
		if err = weights.Put(tail, head, cfg.weightFn(a, b, cfg.rng)); err != nil {
			return nil, builderErrorf(methodRandomGraph, err, "weight(%s, %s)", tail.Name(), head.Name())
		}
	}

	return g, nil
}

// Choose returns a uniformly random node, or nil for an empty graph.
func (g *Graph) Choose(rng *rand.Rand) *digraph.Node {
	if len(g.Nodes) == 0 {
		return nil
	}

	return g.Nodes[rng.Intn(len(g.Nodes))]
}

// Extent returns the smallest rectangle containing every node.
func (g *Graph) Extent() orb.Bound {
	mp := make(orb.MultiPoint, 0, g.Points.Len())
	for p := range g.Points.Values() {
		mp = append(mp, p)
	}

	return mp.Bound()
}

// ArcCount returns the number of distinct arcs.
func (g *Graph) ArcCount() int {
	var n int
	for _, node := range g.Nodes {
		n += node.ChildCount()
	}

	return n
}
