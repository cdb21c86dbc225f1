// SPDX-License-Identifier: MIT

package sparse

import "github.com/google/btree"

// Store is the Coordinate Store: an ordered map from complete coordinates to
// values. It holds whatever it is given; default-value elision is the
// Matrix's job, not the store's.
//
// Implementations must iterate in Compare order, and two traversals of an
// unchanged store must yield identical sequences.
type Store[T any] interface {
	// Get returns the value stored at c, or ok=false if absent.
	Get(c Coord) (v T, ok bool)

	// Set inserts or overwrites the value at c. The store keeps its own copy of c.
	Set(c Coord, v T)

	// Remove deletes the entry at c. Removing an absent key is a no-op.
	Remove(c Coord)

	// Len returns the number of stored entries.
	Len() int

	// Ascend calls fn for every entry in ascending order until fn returns false.
	Ascend(fn func(c Coord, v T) bool)

	// AscendFrom is Ascend restricted to keys >= pivot.
	AscendFrom(pivot Coord, fn func(c Coord, v T) bool)

	// Clone returns an independent copy of the store.
	Clone() Store[T]
}

// cell is one B-tree item: a coordinate key and its value.
type cell[T any] struct {
	key Coord
	val T
}

func cellLess[T any](a, b cell[T]) bool {
	return Compare(a.key, b.key) < 0
}

// BTreeStore is the default Store, backed by a generic google/btree.
// Complexity: Get/Set/Remove O(N·log S); Len O(1); Ascend O(S).
type BTreeStore[T any] struct {
	tree *btree.BTreeG[cell[T]]
}

var _ Store[int] = (*BTreeStore[int])(nil)

// NewBTreeStore creates an empty store with the given B-tree degree.
// Panics if degree < 2 (see WithDegree).
func NewBTreeStore[T any](degree int) *BTreeStore[T] {
	if degree < minDegree {
		panic(panicDegreeInvalid)
	}

	return &BTreeStore[T]{tree: btree.NewG[cell[T]](degree, cellLess[T])}
}

// Get returns the value at c, if present.
func (s *BTreeStore[T]) Get(c Coord) (T, bool) {
	it, ok := s.tree.Get(cell[T]{key: c})

	return it.val, ok
}

// Set inserts or overwrites the value at c, copying c so later mutation of
// the caller's slice cannot reorder the tree.
func (s *BTreeStore[T]) Set(c Coord, v T) {
	s.tree.ReplaceOrInsert(cell[T]{key: c.Clone(), val: v})
}

// Remove deletes the entry at c if present.
func (s *BTreeStore[T]) Remove(c Coord) {
	s.tree.Delete(cell[T]{key: c})
}

// Len returns the number of stored entries.
func (s *BTreeStore[T]) Len() int {
	return s.tree.Len()
}

// Ascend walks all entries in coordinate order.
func (s *BTreeStore[T]) Ascend(fn func(c Coord, v T) bool) {
	s.tree.Ascend(func(it cell[T]) bool {
		return fn(it.key, it.val)
	})
}

// AscendFrom walks entries with key >= pivot in coordinate order.
func (s *BTreeStore[T]) AscendFrom(pivot Coord, fn func(c Coord, v T) bool) {
	s.tree.AscendGreaterOrEqual(cell[T]{key: pivot}, func(it cell[T]) bool {
		return fn(it.key, it.val)
	})
}

// Clone returns a copy-on-write clone; keys are never mutated in place, so
// sharing them between the two trees is safe.
func (s *BTreeStore[T]) Clone() Store[T] {
	return &BTreeStore[T]{tree: s.tree.Clone()}
}
