package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpath/digraph"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// benchGraph builds a sparse random graph with n nodes and 9n arcs.
func benchGraph(b *testing.B, n int) ([]*digraph.Node, *digraph.WeightFunction) {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	nodes := make([]*digraph.Node, n)
	for i := range nodes {
		nodes[i], _ = digraph.NewNode(fmt.Sprintf("v%d", i))
	}
	w, _ := digraph.NewWeightFunction()
	for i := 0; i < 9*n; i++ {
		u, v := nodes[rng.Intn(n)], nodes[rng.Intn(n)]
		_, _ = digraph.AddArc(u, v)
		_ = w.Put(u, v, rng.Float64()*100)
	}

	return nodes, w
}

// BenchmarkSearch compares heap fan-outs on the same graph and query.
func BenchmarkSearch(b *testing.B) {
	nodes, w := benchGraph(b, 5000)
	src, dst := nodes[0], nodes[len(nodes)-1]

	for _, d := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("degree=%d", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = dijkstra.ShortestPath(src, dst, w, digraph.NodeHasher{},
					dijkstra.WithDegree[*digraph.Node](d))
			}
		})
	}
}
