package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/digraph"
)

// arc is one weighted arc in a test fixture.
type arc struct {
	tail, head string
	weight     float64
}

// fixture is a small named graph plus its weight function.
type fixture struct {
	nodes map[string]*digraph.Node
	w     *digraph.WeightFunction
}

// newFixture creates every node named in arcs (and in extra) and wires the arcs.
func newFixture(t *testing.T, arcs []arc, extra ...string) *fixture {
	t.Helper()
	w, err := digraph.NewWeightFunction()
	require.NoError(t, err)
	f := &fixture{nodes: map[string]*digraph.Node{}, w: w}

	for _, name := range extra {
		f.node(t, name)
	}
	for _, a := range arcs {
		tail, head := f.node(t, a.tail), f.node(t, a.head)
		_, err = digraph.AddArc(tail, head)
		require.NoError(t, err)
		require.NoError(t, w.Put(tail, head, a.weight))
	}

	return f
}

func (f *fixture) node(t *testing.T, name string) *digraph.Node {
	t.Helper()
	if n, ok := f.nodes[name]; ok {
		return n
	}
	n, err := digraph.NewNode(name)
	require.NoError(t, err)
	f.nodes[name] = n

	return n
}

func names(path []*digraph.Node) []string {
	out := make([]string, len(path))
	for i, n := range path {
		out[i] = n.Name()
	}

	return out
}

// scenarioArcs is the seven-node graph whose cheapest S→T route detours
// through D and E.
var scenarioArcs = []arc{
	{"S", "A", 1}, {"A", "B", 2}, {"B", "C", 3}, {"C", "T", 16},
	{"S", "D", 11}, {"D", "E", 5}, {"E", "T", 6}, {"C", "D", 4},
}
