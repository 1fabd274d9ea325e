package digraph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/digraph"
)

func mustNode(t *testing.T, name string) *digraph.Node {
	t.Helper()
	n, err := digraph.NewNode(name)
	require.NoError(t, err)

	return n
}

func mustArc(t *testing.T, tail, head *digraph.Node) {
	t.Helper()
	ok, err := digraph.AddArc(tail, head)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewNode(t *testing.T) {
	_, err := digraph.NewNode("")
	assert.ErrorIs(t, err, digraph.ErrEmptyName)

	n := mustNode(t, "A")
	assert.Equal(t, "A", n.Name())
	assert.Equal(t, "[node: id = A]", n.String())
	assert.Zero(t, n.ChildCount())
	assert.Zero(t, n.ParentCount())
}

func TestAddArc_MirrorsBothEnds(t *testing.T) {
	a, b, c := mustNode(t, "A"), mustNode(t, "B"), mustNode(t, "C")
	mustArc(t, a, b)
	mustArc(t, a, c)

	ok, err := digraph.AddArc(a, b)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate arc")

	assert.True(t, a.HasChild(b))
	assert.True(t, b.HasParent(a))
	assert.False(t, b.HasChild(a))
	assert.Equal(t, 2, a.ChildCount())
	assert.Equal(t, []*digraph.Node{b, c}, slices.Collect(a.Children()))
	assert.Equal(t, []*digraph.Node{a}, slices.Collect(c.Parents()))

	_, err = digraph.AddArc(nil, a)
	assert.ErrorIs(t, err, digraph.ErrNilNode)
}

func TestRemoveArc(t *testing.T) {
	a, b := mustNode(t, "A"), mustNode(t, "B")
	mustArc(t, a, b)

	assert.True(t, digraph.RemoveArc(a, b))
	assert.False(t, digraph.RemoveArc(a, b))
	assert.False(t, a.HasChild(b))
	assert.False(t, b.HasParent(a))
	assert.False(t, digraph.RemoveArc(nil, b))
}

func TestClear_DropsIncidentArcs(t *testing.T) {
	a, b, c := mustNode(t, "A"), mustNode(t, "B"), mustNode(t, "C")
	mustArc(t, a, b)
	mustArc(t, b, c)
	mustArc(t, c, b)
	mustArc(t, b, b)

	b.Clear()

	assert.Zero(t, b.ChildCount())
	assert.Zero(t, b.ParentCount())
	assert.False(t, a.HasChild(b))
	assert.False(t, c.HasParent(b))
	assert.False(t, c.HasChild(b))
}

func TestClear_SameNamedTwin(t *testing.T) {
	a, twin := mustNode(t, "A"), mustNode(t, "A")
	mustArc(t, a, twin)
	mustArc(t, twin, a)

	a.Clear()

	assert.Zero(t, a.ChildCount())
	assert.Zero(t, a.ParentCount())
	assert.Zero(t, twin.ChildCount())
	assert.Zero(t, twin.ParentCount())
}

func TestNodeHasher_NameIdentity(t *testing.T) {
	var h digraph.NodeHasher
	a1, a2, b := mustNode(t, "A"), mustNode(t, "A"), mustNode(t, "B")

	assert.True(t, h.Equal(a1, a2))
	assert.Equal(t, h.Hash(a1), h.Hash(a2))
	assert.False(t, h.Equal(a1, b))
	assert.False(t, h.Equal(nil, nil))
	assert.Zero(t, h.Hash(nil))

	// A same-named node is treated as the existing arc head.
	mustArc(t, b, a1)
	assert.True(t, b.HasChild(a2))
}

func TestWeightFunction(t *testing.T) {
	a, b, c := mustNode(t, "A"), mustNode(t, "B"), mustNode(t, "C")
	w, err := digraph.NewWeightFunction()
	require.NoError(t, err)

	require.NoError(t, w.Put(a, b, 1.5))
	require.NoError(t, w.Put(a, c, 2))
	require.NoError(t, w.Put(a, b, 3))
	assert.Equal(t, 2, w.Len())

	got, ok := w.Get(a, b)
	require.True(t, ok)
	assert.Equal(t, 3.0, got)

	_, ok = w.Get(b, a)
	assert.False(t, ok)
	_, ok = w.Get(c, c)
	assert.False(t, ok)

	assert.ErrorIs(t, w.Put(nil, a, 1), digraph.ErrNilNode)
}
