package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/digraph"
)

type node = *digraph.Node

// build creates named nodes and the given arcs.
func build(t *testing.T, arcs [][2]string, names ...string) map[string]node {
	t.Helper()
	nodes := make(map[string]node, len(names))
	for _, name := range names {
		n, err := digraph.NewNode(name)
		require.NoError(t, err)
		nodes[name] = n
	}
	for _, a := range arcs {
		_, err := digraph.AddArc(nodes[a[0]], nodes[a[1]])
		require.NoError(t, err)
	}

	return nodes
}

func order(res *bfs.Result[node]) []string {
	out := make([]string, len(res.Order))
	for i, n := range res.Order {
		out[i] = n.Name()
	}

	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	nodes := build(t, nil, "A")

	_, err := bfs.BFS[node](nil, digraph.NodeHasher{})
	assert.ErrorIs(t, err, bfs.ErrNilStart)

	_, err = bfs.BFS[node](nodes["A"], nil)
	assert.ErrorIs(t, err, bfs.ErrNilHasher)

	_, err = bfs.BFS(nodes["A"], digraph.NodeHasher{}, bfs.WithMaxDepth[node](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(nodes["A"], digraph.NodeHasher{}, bfs.WithInitialCapacity[node](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	nodes := build(t, nil, "A")
	res, err := bfs.BFS(nodes["A"], digraph.NodeHasher{})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, order(res))
	d, ok := res.Depth.Get(nodes["A"])
	assert.True(t, ok)
	assert.Zero(t, d)
	assert.Zero(t, res.Parent.Len())
}

// TestBFS_LayersAndPaths checks layer order, depths, self-loops and PathTo.
func TestBFS_LayersAndPaths(t *testing.T) {
	arcs := [][2]string{{"A", "B"}, {"A", "D"}, {"B", "C"}, {"D", "C"}, {"C", "A"}, {"C", "C"}, {"E", "A"}}
	nodes := build(t, arcs, "A", "B", "C", "D", "E")

	res, err := bfs.BFS(nodes["A"], digraph.NodeHasher{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, order(res))

	for name, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		got, ok := res.Depth.Get(nodes[name])
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	assert.False(t, res.Reached(nodes["E"]))

	path, err := res.PathTo(nodes["C"])
	require.NoError(t, err)
	assert.Equal(t, []node{nodes["A"], nodes["B"], nodes["C"]}, path)

	_, err = res.PathTo(nodes["E"])
	assert.Error(t, err)
}

// TestBFS_MaxDepthAndFilter verifies depth limiting and arc filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	arcs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "X"}}
	nodes := build(t, arcs, "A", "B", "C", "D", "X")

	res, err := bfs.BFS(nodes["A"], digraph.NodeHasher{}, bfs.WithMaxDepth[node](2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "C"}, order(res))

	skipX := func(_, to node) bool { return to.Name() != "X" }
	res, err = bfs.BFS(nodes["A"], digraph.NodeHasher{}, bfs.WithFilterNeighbor(skipX))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order(res))
}

// TestBFS_OnVisitAbort confirms that hook errors stop the walk and are wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	nodes := build(t, [][2]string{{"A", "B"}, {"B", "C"}}, "A", "B", "C")
	stop := errors.New("stop")

	var seen []string
	res, err := bfs.BFS(nodes["A"], digraph.NodeHasher{},
		bfs.WithOnVisit(func(n node, _ int) error {
			seen = append(seen, n.Name())
			if n.Name() == "B" {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, seen)
	assert.Equal(t, []string{"A", "B"}, order(res))
}

// TestBFS_Cancellation ensures a cancelled context halts the walk.
func TestBFS_Cancellation(t *testing.T) {
	nodes := build(t, [][2]string{{"A", "B"}}, "A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(nodes["A"], digraph.NodeHasher{}, bfs.WithContext[node](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
