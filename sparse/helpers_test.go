// SPDX-License-Identifier: MIT
// Package sparse_test contains shared test helpers.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and fails unless it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// sweep writes the diagonal and anti-diagonal of an n×n block: [i][i] = i and
// [i][n-1-i] = i. Row 0 writes the default and stores nothing.
func sweep(m *sparse.Matrix[int], n int) {
	for i := 0; i < n; i++ {
		m.Index(i).Index(i).Set(i)
		m.Index(i).Index(n - 1 - i).Set(i)
	}
}

// countingStore wraps a BTreeStore and counts mutating calls.
type countingStore struct {
	*sparse.BTreeStore[int]
	sets, removes int
}

func newCountingStore() *countingStore {
	return &countingStore{BTreeStore: sparse.NewBTreeStore[int](sparse.DefaultDegree)}
}

func (s *countingStore) Set(c sparse.Coord, v int) {
	s.sets++
	s.BTreeStore.Set(c, v)
}

func (s *countingStore) Remove(c sparse.Coord) {
	s.removes++
	s.BTreeStore.Remove(c)
}

// collect drains a fresh enumerator.
func collect[T any](e *sparse.Enumerator[T]) []sparse.Entry[T] {
	var out []sparse.Entry[T]
	for e.Next() {
		out = append(out, e.Entry())
	}

	return out
}
