// Package dijkstra implements the point-to-point search loop: extract the
// cheapest open node, stop if it is the target, otherwise settle it and
// relax its outgoing arcs.
package dijkstra

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/katalvlaran/lvpath/dheap"
	"github.com/katalvlaran/lvpath/hashtable"
)

// ShortestPath returns the cheapest path from source to target, or an empty
// path if target is unreachable. See Search for the full result.
func ShortestPath[N Node[N]](source, target N, w WeightFunction[N], h hashtable.Hasher[N], opts ...Option[N]) ([]N, error) {
	res, err := Search(source, target, w, h, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs Dijkstra's algorithm from source until target is extracted or
// the open set is exhausted.
//
// Preconditions and validation (in order):
//  1. source must be non-nil (ErrNilSource).
//  2. target must be non-nil (ErrNilTarget).
//  3. w must be non-nil (ErrNilWeightFunction).
//  4. h must be non-nil (ErrNilHasher).
//
// During the search an arc without a weight fails with ErrMissingWeight and
// a negative or NaN weight fails with ErrNegativeWeight. No partial result is
// returned on error.
//
// Complexity:
//
//   - Time:  O(E · log_d V + V · d · log_d V)
//   - Space: O(V)
func Search[N Node[N]](source, target N, w WeightFunction[N], h hashtable.Hasher[N], opts ...Option[N]) (*Result[N], error) {
	// 1) Validate collaborators.
	if isNil(source) {
		return nil, ErrNilSource
	}
	if isNil(target) {
		return nil, ErrNilTarget
	}
	if isNil(w) {
		return nil, ErrNilWeightFunction
	}
	if isNil(h) {
		return nil, ErrNilHasher
	}

	// 2) Resolve options.
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Build the auxiliary containers and seed the source.
	r, err := newRunner(source, target, w, h, cfg)
	if err != nil {
		return nil, err
	}
	if err = r.init(); err != nil {
		return nil, err
	}

	// 4) Expand until found or exhausted.
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// link is the predecessor record of a discovered node. root marks the source,
// which has no predecessor.
type link[N any] struct {
	from N
	root bool
}

// runner holds the mutable state of a single search.
type runner[N Node[N]] struct {
	source, target N
	w              WeightFunction[N]
	h              hashtable.Hasher[N]
	opts           Options[N]

	open   *dheap.Heap[N, float64]    // frontier keyed by tentative cost
	closed *hashtable.Set[N]          // settled nodes
	parent *hashtable.Map[N, link[N]] // predecessor of every discovered node
	cost   *hashtable.Map[N, float64] // best known cost; owner of the value

	found bool
	stats Stats
}

func newRunner[N Node[N]](source, target N, w WeightFunction[N], h hashtable.Hasher[N], cfg Options[N]) (*runner[N], error) {
	tableOpts := []hashtable.Option{
		hashtable.WithInitialCapacity(cfg.InitialCapacity),
		hashtable.WithLoadFactor(cfg.LoadFactor),
	}

	open, err := dheap.NewOrdered[N, float64](h,
		dheap.WithDegree(cfg.Degree),
		dheap.WithInitialCapacity(cfg.InitialCapacity),
		dheap.WithLoadFactor(cfg.LoadFactor),
	)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: open set: %w", err)
	}
	closed, err := hashtable.NewSet[N](h, tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: closed set: %w", err)
	}
	parent, err := hashtable.NewMap[N, link[N]](h, tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: parent map: %w", err)
	}
	cost, err := hashtable.NewMap[N, float64](h, tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: cost map: %w", err)
	}

	return &runner[N]{
		source: source,
		target: target,
		w:      w,
		h:      h,
		opts:   cfg,
		open:   open,
		closed: closed,
		parent: parent,
		cost:   cost,
	}, nil
}

// init puts the source in the open set at cost 0 with no predecessor.
func (r *runner[N]) init() error {
	if _, err := r.open.Add(r.source, 0); err != nil {
		return fmt.Errorf("dijkstra: seed source: %w", err)
	}
	r.stats.Pushes++
	if _, _, err := r.parent.Put(r.source, link[N]{root: true}); err != nil {
		return fmt.Errorf("dijkstra: seed source: %w", err)
	}
	if _, _, err := r.cost.Put(r.source, 0); err != nil {
		return fmt.Errorf("dijkstra: seed source: %w", err)
	}

	return nil
}

// process is the main loop. It returns with r.found set when the target is
// extracted, or with the open set empty when the target is unreachable.
func (r *runner[N]) process() error {
	for r.open.Len() > 0 {
		// 1) Extract the cheapest open node; its cost is final.
		current, c, _ := r.open.ExtractMin()
		r.stats.Pops++
		r.opts.OnSettle(current, c)

		// 2) Stop at the target.
		if r.h.Equal(current, r.target) {
			r.found = true

			return nil
		}

		// 3) Settle current before scanning its arcs so self-loops are skipped.
		if _, err := r.closed.Add(current); err != nil {
			return fmt.Errorf("dijkstra: settle: %w", err)
		}
		r.stats.Settled++

		// 4) Relax every arc leaving current.
		if err := r.relax(current, c); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each child of u, whose final cost is cu.
func (r *runner[N]) relax(u N, cu float64) error {
	for v := range u.Children() {
		if r.closed.Contains(v) {
			continue
		}
		r.stats.RelaxationAttempts++

		// 1) Look up and check the arc weight.
		wt, ok := r.w.Get(u, v)
		if !ok {
			return fmt.Errorf("%w: %v -> %v", ErrMissingWeight, u, v)
		}
		if wt < 0 || math.IsNaN(wt) {
			return fmt.Errorf("%w: %v -> %v weight=%g", ErrNegativeWeight, u, v, wt)
		}
		tentative := cu + wt

		// 2) First sighting: open v.
		known, seen := r.cost.Get(v)
		if !seen {
			if _, err := r.open.Add(v, tentative); err != nil {
				return fmt.Errorf("dijkstra: open %v: %w", v, err)
			}
			r.stats.Pushes++
			if err := r.record(u, v, tentative); err != nil {
				return err
			}

			continue
		}

		// 3) Strictly better route: lower v in place.
		if tentative < known {
			r.open.DecreaseKey(v, tentative)
			r.stats.DecreaseKeys++
			if err := r.record(u, v, tentative); err != nil {
				return err
			}
		}
	}

	return nil
}

// record stores u as the predecessor of v and c as v's best cost.
// Both keys already exist when v was seen before, so no growth can fail then.
func (r *runner[N]) record(u, v N, c float64) error {
	if _, _, err := r.parent.Put(v, link[N]{from: u}); err != nil {
		return fmt.Errorf("dijkstra: record %v: %w", v, err)
	}
	if _, _, err := r.cost.Put(v, c); err != nil {
		return fmt.Errorf("dijkstra: record %v: %w", v, err)
	}
	r.stats.Relaxations++

	return nil
}

// result packages the outcome.
func (r *runner[N]) result() *Result[N] {
	if !r.found {
		return &Result[N]{Path: []N{}, Cost: math.Inf(1), Stats: r.stats}
	}

	c, _ := r.cost.Get(r.target)

	return &Result[N]{Path: r.traceback(), Cost: c, Found: true, Stats: r.stats}
}

// traceback follows predecessor links from the target to the source and
// returns them in source-to-target order.
func (r *runner[N]) traceback() []N {
	var path []N
	node := r.target
	for {
		path = append(path, node)
		l, _ := r.parent.Get(node)
		if l.root {
			break
		}
		node = l.from
	}
	slices.Reverse(path)

	return path
}

// isNil reports whether v is a nil interface or a nil pointer, map, slice,
// channel or func behind an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
