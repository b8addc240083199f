// Package store provides the keyed package table used during a simulation run.
package store

import (
	"encoding/binary"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

const (
	DefaultBuckets = 10
	MaxLoadFactor  = 0.75
)

type entry[V any] struct {
	key   int
	value V
}

// Table is a chaining hash table keyed by package ID.
//
// Each bucket is an ordered list of key/value pairs. When an insert adds a new
// key and pushes size/buckets above MaxLoadFactor, the bucket count doubles and
// every pair is rehashed. Removal never shrinks the table.
//
// Table is not safe for concurrent mutation.
type Table[V any] struct {
	buckets [][]entry[V]
	size    int
}

// New returns an empty table with the given number of buckets.
func New[V any](buckets int) *Table[V] {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	return &Table[V]{buckets: make([][]entry[V], buckets)}
}

func bucketIndex(key, buckets int) int {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(key))
	return int(xxhash.Sum64(b[:]) % uint64(buckets))
}

// Insert stores value under key, overwriting any previous value. It always
// reports true.
func (t *Table[V]) Insert(key int, value V) bool {
	i := bucketIndex(key, len(t.buckets))
	for j := range t.buckets[i] {
		if t.buckets[i][j].key == key {
			t.buckets[i][j].value = value
			return true
		}
	}

	t.buckets[i] = append(t.buckets[i], entry[V]{key: key, value: value})
	t.size++

	if t.LoadFactor() > MaxLoadFactor {
		t.grow()
	}
	return true
}

// Search returns the value stored under key and whether it was present.
func (t *Table[V]) Search(key int) (V, bool) {
	i := bucketIndex(key, len(t.buckets))
	for _, e := range t.buckets[i] {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// Remove deletes key if present.
func (t *Table[V]) Remove(key int) {
	i := bucketIndex(key, len(t.buckets))
	for j, e := range t.buckets[i] {
		if e.key == key {
			t.buckets[i] = slices.Delete(t.buckets[i], j, j+1)
			t.size--
			return
		}
	}
}

func (t *Table[V]) grow() {
	old := t.buckets
	t.buckets = make([][]entry[V], len(old)*2)
	for _, bucket := range old {
		for _, e := range bucket {
			i := bucketIndex(e.key, len(t.buckets))
			t.buckets[i] = append(t.buckets[i], e)
		}
	}
}

func (t *Table[V]) Len() int { return t.size }

func (t *Table[V]) BucketCount() int { return len(t.buckets) }

func (t *Table[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// All iterates over every pair in bucket order.
func (t *Table[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for _, bucket := range t.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns every key in ascending order.
func (t *Table[V]) Keys() []int {
	keys := make([]int, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
