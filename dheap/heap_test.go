package dheap_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/dheap"
	"github.com/katalvlaran/lvpath/hashtable"
)

func newIntHeap(t *testing.T, opts ...dheap.Option) *dheap.Heap[int, float64] {
	t.Helper()
	q, err := dheap.NewOrdered[int, float64](hashtable.ComparableHasher[int]{}, opts...)
	require.NoError(t, err)

	return q
}

func TestNew_Errors(t *testing.T) {
	_, err := dheap.New[int, int](nil, func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, dheap.ErrNilHasher)

	_, err = dheap.New[int, int](hashtable.ComparableHasher[int]{}, nil)
	assert.ErrorIs(t, err, dheap.ErrNilCompare)

	_, err = dheap.NewOrdered[int, float64](hashtable.ComparableHasher[int]{}, dheap.WithInitialCapacity(1<<62))
	assert.ErrorIs(t, err, dheap.ErrCapacityExceeded)
}

func TestOptions(t *testing.T) {
	q := newIntHeap(t)
	assert.Equal(t, dheap.DefaultDegree, q.Degree())

	q = newIntHeap(t, dheap.WithDegree(0))
	assert.Equal(t, dheap.MinDegree, q.Degree())

	q = newIntHeap(t, dheap.WithDegree(7))
	assert.Equal(t, 7, q.Degree())

	assert.Panics(t, func() { dheap.WithInitialCapacity(-1) })
	assert.Panics(t, func() { dheap.WithLoadFactor(0) })
}

func TestEmptyHeap(t *testing.T) {
	q := newIntHeap(t)

	_, _, ok := q.ExtractMin()
	assert.False(t, ok)
	_, _, ok = q.Min()
	assert.False(t, ok)
	_, ok = q.Priority(1)
	assert.False(t, ok)
	assert.False(t, q.DecreaseKey(1, 0))
	assert.Zero(t, q.Len())
	assert.True(t, q.IsHealthy())
}

func TestAdd_RejectsDuplicate(t *testing.T) {
	q := newIntHeap(t)

	ok, err := q.Add(1, 5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = q.Add(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, q.Len())

	p, _ := q.Priority(1)
	assert.Equal(t, 5.0, p, "rejected Add must not change the priority")
}

func TestDecreaseKey(t *testing.T) {
	q := newIntHeap(t, dheap.WithDegree(2))
	for i, p := range []float64{10, 20, 30, 40} {
		_, err := q.Add(i, p)
		require.NoError(t, err)
	}

	assert.False(t, q.DecreaseKey(9, 0), "absent element")
	assert.False(t, q.DecreaseKey(3, 40), "equal priority")
	assert.False(t, q.DecreaseKey(3, 50), "larger priority")

	require.True(t, q.DecreaseKey(3, 1))
	assert.True(t, q.IsHealthy())

	e, p, ok := q.Min()
	require.True(t, ok)
	assert.Equal(t, 3, e)
	assert.Equal(t, 1.0, p)
}

func TestExtractMin_RemovesFromIndex(t *testing.T) {
	q := newIntHeap(t)
	_, _ = q.Add(1, 2)
	_, _ = q.Add(2, 1)

	e, p, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, 2, e)
	assert.Equal(t, 1.0, p)
	assert.False(t, q.Contains(2))
	assert.True(t, q.Contains(1))

	ok, err := q.Add(2, 7)
	require.NoError(t, err)
	assert.True(t, ok, "extracted element may be queued again")
}

func TestEqualPrioritiesDrainCompletely(t *testing.T) {
	q := newIntHeap(t, dheap.WithDegree(3))
	for i := 0; i < 50; i++ {
		_, err := q.Add(i, 1)
		require.NoError(t, err)
	}

	seen := map[int]bool{}
	for q.Len() > 0 {
		e, p, ok := q.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, 1.0, p)
		seen[e] = true
		require.True(t, q.IsHealthy())
	}
	assert.Len(t, seen, 50)
}

func TestGrowthBeyondInitialCapacity(t *testing.T) {
	q := newIntHeap(t)
	for i := 1000; i > 0; i-- {
		ok, err := q.Add(i, float64(i))
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 1000, q.Len())
	assert.True(t, q.IsHealthy())

	for want := 1; want <= 1000; want++ {
		e, _, _ := q.ExtractMin()
		require.Equal(t, want, e)
	}
}

func TestClear(t *testing.T) {
	q := newIntHeap(t)
	for i := 0; i < 20; i++ {
		_, _ = q.Add(i, float64(i))
	}

	q.Clear()
	assert.Zero(t, q.Len())
	assert.False(t, q.Contains(3))
	assert.True(t, q.IsHealthy())

	ok, err := q.Add(3, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomCompare_MaxHeap(t *testing.T) {
	q, err := dheap.New[string, int](hashtable.StringHasher{}, func(a, b int) int { return b - a })
	require.NoError(t, err)
	_, _ = q.Add("a", 1)
	_, _ = q.Add("b", 3)
	_, _ = q.Add("c", 2)

	e, _, _ := q.ExtractMin()
	assert.Equal(t, "b", e)
}

// TestRandomInterleavings drives every degree from 2 to 8 through a random
// mix of Add, DecreaseKey and ExtractMin and checks the heap after each step.
func TestRandomInterleavings(t *testing.T) {
	for d := 2; d <= 8; d++ {
		t.Run(fmt.Sprintf("degree=%d", d), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(d)))
			q := newIntHeap(t, dheap.WithDegree(d))
			ref := map[int]float64{}

			for step := 0; step < 3000; step++ {
				switch op := rng.Intn(10); {
				case op < 5:
					e := rng.Intn(400)
					p := float64(rng.Intn(1000))
					ok, err := q.Add(e, p)
					require.NoError(t, err)
					_, dup := ref[e]
					require.Equal(t, !dup, ok)
					if ok {
						ref[e] = p
					}
				case op < 8:
					e := rng.Intn(400)
					p := float64(rng.Intn(1000))
					cur, present := ref[e]
					ok := q.DecreaseKey(e, p)
					require.Equal(t, present && p < cur, ok)
					if ok {
						ref[e] = p
					}
				default:
					e, p, ok := q.ExtractMin()
					require.Equal(t, len(ref) > 0, ok)
					if !ok {
						continue
					}
					for _, other := range ref {
						require.LessOrEqual(t, p, other)
					}
					require.Equal(t, ref[e], p)
					delete(ref, e)
				}

				require.Equal(t, len(ref), q.Len())
				require.True(t, q.IsHealthy(), "step %d", step)
			}

			// Drain: priorities come out in non-decreasing order.
			want := make([]float64, 0, len(ref))
			for _, p := range ref {
				want = append(want, p)
			}
			sort.Float64s(want)
			got := make([]float64, 0, len(ref))
			for q.Len() > 0 {
				_, p, _ := q.ExtractMin()
				got = append(got, p)
			}
			assert.Equal(t, want, got)
		})
	}
}
