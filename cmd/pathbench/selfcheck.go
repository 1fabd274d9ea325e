package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvpath/digraph"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// selfCheck runs the fixture checks and reports every failure together.
func selfCheck() error {
	var result *multierror.Error
	for _, check := range []struct {
		name string
		fn   func() error
	}{
		{"nodes", checkNodes},
		{"weights", checkWeights},
		{"search", checkSearch},
	} {
		if err := check.fn(); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", check.name, err))
		}
	}

	return result.ErrorOrNil()
}

// expect appends a failure to errs when ok is false.
func expect(errs *multierror.Error, ok bool, format string, args ...interface{}) *multierror.Error {
	if ok {
		return errs
	}

	return multierror.Append(errs, fmt.Errorf(format, args...))
}

func newNodes(names ...string) ([]*digraph.Node, error) {
	nodes := make([]*digraph.Node, len(names))
	for i, name := range names {
		n, err := digraph.NewNode(name)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	return nodes, nil
}

func checkNodes() error {
	nodes, err := newNodes("Node A", "Node B", "Node C", "Node D")
	if err != nil {
		return err
	}
	a, b, d := nodes[0], nodes[1], nodes[3]

	var errs *multierror.Error
	errs = expect(errs, a.String() == "[node: id = Node A]", "unexpected String() %q", a.String())
	for _, u := range nodes {
		for _, v := range nodes {
			errs = expect(errs, !u.HasChild(v), "fresh node %s has child %s", u, v)
		}
	}

	for _, arc := range [][2]*digraph.Node{{a, b}, {b, a}, {a, a}, {b, b}, {b, d}} {
		added, err := digraph.AddArc(arc[0], arc[1])
		if err != nil {
			return err
		}
		errs = expect(errs, added, "AddArc(%s, %s) reported an existing arc", arc[0], arc[1])
	}
	errs = expect(errs, a.HasChild(b) && b.HasChild(a), "a <-> b missing")

	a.Clear()
	for _, v := range nodes {
		errs = expect(errs, !a.HasChild(v), "cleared node still has child %s", v)
	}
	errs = expect(errs, !b.HasChild(a), "cleared node still has parent %s", b)
	errs = expect(errs, b.HasChild(d), "unrelated arc b -> d lost")

	return errs.ErrorOrNil()
}

func checkWeights() error {
	nodes, err := newNodes("Node A", "Node C")
	if err != nil {
		return err
	}
	a, c := nodes[0], nodes[1]
	w, err := digraph.NewWeightFunction()
	if err != nil {
		return err
	}

	var errs *multierror.Error
	_, ok := w.Get(a, c)
	errs = expect(errs, !ok, "empty weight function has a -> c")
	for _, tc := range []struct {
		tail, head *digraph.Node
		weight     float64
	}{{a, c, 2}, {c, a, 4.5}, {a, a, 7.5}} {
		if err = w.Put(tc.tail, tc.head, tc.weight); err != nil {
			return err
		}
		got, ok := w.Get(tc.tail, tc.head)
		errs = expect(errs, ok && got == tc.weight, "weight %s -> %s = %v, want %v", tc.tail, tc.head, got, tc.weight)
	}
	_, ok = w.Get(c, c)
	errs = expect(errs, !ok, "unexpected weight c -> c")

	return errs.ErrorOrNil()
}

func checkSearch() error {
	nodes, err := newNodes("A", "B", "C", "D", "E", "Source", "Target")
	if err != nil {
		return err
	}
	a, b, c, d, e, s, t := nodes[0], nodes[1], nodes[2], nodes[3], nodes[4], nodes[5], nodes[6]
	w, err := digraph.NewWeightFunction()
	if err != nil {
		return err
	}
	for _, arc := range []struct {
		tail, head *digraph.Node
		weight     float64
	}{
		{s, a, 1}, {a, b, 2}, {b, c, 3}, {c, t, 16},
		{s, d, 11}, {d, e, 5}, {e, t, 6}, {c, d, 4},
	} {
		if _, err = digraph.AddArc(arc.tail, arc.head); err != nil {
			return err
		}
		if err = w.Put(arc.tail, arc.head, arc.weight); err != nil {
			return err
		}
	}

	path, err := dijkstra.ShortestPath(s, t, w, digraph.NodeHasher{})
	if err != nil {
		return err
	}

	var errs *multierror.Error
	want := []*digraph.Node{s, a, b, c, d, e, t}
	if errs = expect(errs, len(path) == len(want), "path length %d, want %d", len(path), len(want)); errs != nil {
		return errs
	}
	for i := range want {
		errs = expect(errs, path[i] == want[i], "path[%d] = %s, want %s", i, path[i], want[i])
	}
	cost, err := digraph.PathCost(path, w)
	if err != nil {
		return err
	}
	errs = expect(errs, cost == 21, "path cost %v, want 21", cost)

	return errs.ErrorOrNil()
}
