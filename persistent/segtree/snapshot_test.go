package segtree

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotOfVersion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.segtree")
	defer teardown()
	//
	tree, _ := NewSum([]int{1, 2, 3, 4, 5})
	s0, err := tree.Snapshot(Latest)
	require.NoError(t, err)
	require.NoError(t, tree.Update(0, 10))
	require.NoError(t, tree.Update(4, 50))
	s2, err := tree.Snapshot(Latest)
	require.NoError(t, err)
	//
	assert.Equal(t, 0, s0.Version())
	assert.Equal(t, 2, s2.Version())
	assert.Equal(t, 5, s0.Len())
	assert.Equal(t, 15, s0.Total())
	assert.Equal(t, 69, s2.Total())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s0.Values())
	assert.Equal(t, []int{10, 2, 3, 4, 50}, s2.Values())
	v, err := s0.At(4)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	v, _ = s2.Query(3, 1)
	assert.Equal(t, 9, v)
	s1, _ := tree.Snapshot(1)
	assert.Equal(t, []int{10, 2, 3, 4, 5}, s1.Values())
}

func TestSnapshotErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.segtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree, _ := NewSum([]int{1, 2, 3})
	_, err := tree.Snapshot(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = tree.Snapshot(-2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	s, _ := tree.Snapshot(0)
	_, err = s.Query(0, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSnapshotReadWhileUpdating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.segtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 64
	values := make([]int, n)
	for i := range values {
		values[i] = 1
	}
	tree, _ := NewSum(values)
	snap, _ := tree.Snapshot(0)
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				x := i % n
				sum, err := snap.Query(x, n-1)
				if err != nil || sum != n-x {
					errs <- "snapshot changed while tree was updated"
					return
				}
			}
		}()
	}
	for i := 0; i < 1000; i++ { // single writer
		_ = tree.Update(i%n, i)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
	assert.Equal(t, n, snap.Total())
	assert.Equal(t, 1001, tree.Versions())
}

func TestSnapshotDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.segtree")
	defer teardown()
	//
	tree, _ := New([]string{"x", "y", "z"}, func(r, l string) string { return l + r })
	s, _ := tree.Snapshot(0)
	d := s.Dump()
	t.Logf(d)
	assert.Contains(t, d, "[0…2] xyz")
	assert.Contains(t, d, "[0…1] xy")
	assert.Contains(t, d, "[2…2] z")
}
