package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id   int
	name string
}

func TestTableInsertSearchReturnsLastInserted(t *testing.T) {
	tbl := New[*record](0)

	first := &record{id: 1, name: "first"}
	second := &record{id: 1, name: "second"}

	require.True(t, tbl.Insert(1, first))
	require.True(t, tbl.Insert(11, &record{id: 11}))
	require.Equal(t, 2, tbl.Len())

	got, ok := tbl.Search(1)
	require.True(t, ok)
	assert.Same(t, first, got)

	require.True(t, tbl.Insert(1, second))
	assert.Equal(t, 2, tbl.Len(), "overwrite must not change size")

	got, ok = tbl.Search(1)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestTableRemove(t *testing.T) {
	tbl := New[string](4)
	tbl.Insert(1, "a")
	tbl.Insert(2, "b")
	tbl.Insert(3, "c")

	tbl.Remove(2)
	tbl.Remove(42)

	assert.Equal(t, 2, tbl.Len())
	_, ok := tbl.Search(2)
	assert.False(t, ok)

	v, ok := tbl.Search(3)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestTableSearchMissing(t *testing.T) {
	tbl := New[*record](0)
	got, ok := tbl.Search(7)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestTableGrowthKeepsLoadFactorBounded(t *testing.T) {
	tbl := New[int](DefaultBuckets)
	buckets := tbl.BucketCount()

	for id := 1; id <= 40; id++ {
		tbl.Insert(id, id*10)

		assert.LessOrEqual(t, tbl.LoadFactor(), MaxLoadFactor, "after inserting %d", id)
		if tbl.BucketCount() != buckets {
			assert.Equal(t, buckets*2, tbl.BucketCount(), "bucket count must double")
			buckets = tbl.BucketCount()
		}
	}

	assert.Equal(t, 40, tbl.Len())
	assert.Equal(t, 80, tbl.BucketCount())

	for id := 1; id <= 40; id++ {
		v, ok := tbl.Search(id)
		require.True(t, ok, "id %d lost after rehash", id)
		assert.Equal(t, id*10, v)
	}

	for id := 1; id <= 40; id++ {
		tbl.Remove(id)
	}
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 80, tbl.BucketCount(), "remove never shrinks")
}

func TestTableKeysAndAll(t *testing.T) {
	tbl := New[string](0)
	for _, id := range []int{30, 4, 17, 1} {
		tbl.Insert(id, "x")
	}

	assert.Equal(t, []int{1, 4, 17, 30}, tbl.Keys())

	seen := 0
	for range tbl.All() {
		seen++
	}
	assert.Equal(t, 4, seen)
}
