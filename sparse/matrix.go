// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"iter"
	"strings"
)

// Matrix is a sparse N-dimensional associative matrix of T.
// Only cells whose value differs from the configured default are stored;
// every other coordinate reads back as the default.
//
// The zero value is not usable; construct with New or MustNew.
// A Matrix is not safe for concurrent use.
type Matrix[T comparable] struct {
	dims  int      // N, fixed at construction, > 1
	def   T        // value of every unstored cell
	store Store[T] // non-default cells only
	opts  Options
}

// New creates an empty dims-dimensional matrix whose unassigned cells read as def.
// Stage 1 (Validate): dims must be > 1.
// Stage 2 (Prepare): resolve options.
// Stage 3 (Finalize): allocate an empty B-tree store.
// Returns ErrBadDims if dims < 2.
// Complexity: O(1).
func New[T comparable](dims int, def T, opts ...Option) (*Matrix[T], error) {
	if dims < 2 {
		return nil, fmt.Errorf("New(%d): %w", dims, ErrBadDims)
	}
	o := gatherOptions(opts...)

	return &Matrix[T]{
		dims:  dims,
		def:   def,
		store: NewBTreeStore[T](o.degree),
		opts:  o,
	}, nil
}

// MustNew is New that panics on error. Intended for constant dimensionality.
func MustNew[T comparable](dims int, def T, opts ...Option) *Matrix[T] {
	m, err := New(dims, def, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// NewWithStore creates a matrix on top of a caller-supplied Store.
// The store must be empty and must not be shared with another Matrix.
// Returns ErrBadDims if dims < 2.
func NewWithStore[T comparable](dims int, def T, store Store[T]) (*Matrix[T], error) {
	if dims < 2 {
		return nil, fmt.Errorf("NewWithStore(%d): %w", dims, ErrBadDims)
	}

	return &Matrix[T]{
		dims:  dims,
		def:   def,
		store: store,
		opts:  gatherOptions(),
	}, nil
}

// Dims returns the dimensionality N.
func (m *Matrix[T]) Dims() int { return m.dims }

// Default returns the value every unstored cell reads as.
func (m *Matrix[T]) Default() T { return m.def }

// Size returns the number of non-default cells, never the addressable space.
// Complexity: O(1).
func (m *Matrix[T]) Size() int {
	return m.store.Len()
}

// Index begins a new chained access with i as the first component.
// Every call allocates a fresh coordinate buffer owned by the returned chain.
// Panics (wrapping ErrNegativeIndex) if i < 0.
func (m *Matrix[T]) Index(i int) Chain[T] {
	if m == nil {
		panic(chainErrorf("Index", 0, 0, ErrNilMatrix))
	}
	if i < 0 {
		panic(chainErrorf("Index", 0, m.dims, ErrNegativeIndex))
	}
	buf := make(Coord, 1, m.dims)
	buf[0] = i

	return Chain[T]{m: m, coord: buf}
}

// Cell returns a complete chain for c without chaining Index calls.
// Unlike Index, malformed input is reported as an error (ErrArity when
// len(c) != Dims(), ErrNegativeIndex for a component below zero), which suits
// coordinates coming from untrusted input.
func (m *Matrix[T]) Cell(c Coord) (Chain[T], error) {
	if m == nil {
		return Chain[T]{}, ErrNilMatrix
	}
	if err := c.validate(m.dims); err != nil {
		return Chain[T]{}, err
	}

	return Chain[T]{m: m, coord: c.Clone()}, nil
}

// Entries returns a fresh enumerator positioned before the first stored cell.
func (m *Matrix[T]) Entries() *Enumerator[T] {
	return newEnumerator(m.store)
}

// Begin returns an enumerator positioned on the first stored cell,
// or equal to End() if the matrix is empty.
func (m *Matrix[T]) Begin() *Enumerator[T] {
	e := m.Entries()
	e.Next()

	return e
}

// End returns the past-the-last enumerator position.
func (m *Matrix[T]) End() *Enumerator[T] {
	e := m.Entries()
	e.state = enumDone

	return e
}

// All returns an ordered iterator over stored cells. Each yielded Coord is a
// private copy.
func (m *Matrix[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		m.store.Ascend(func(c Coord, v T) bool {
			return yield(c.Clone(), v)
		})
	}
}

// Clone returns a deep, independent copy of the matrix.
// Complexity: O(1) up front; the B-tree copies nodes lazily on write.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		dims:  m.dims,
		def:   m.def,
		store: m.store.Clone(),
		opts:  m.opts,
	}
}

// Clear removes every stored cell; afterwards every coordinate reads as the default.
// The matrix continues on a fresh BTreeStore, even if it was built with NewWithStore.
func (m *Matrix[T]) Clear() {
	m.store = NewBTreeStore[T](m.opts.degree)
}

// String renders one "[c1]...[cN] = v" line per stored cell, in order.
// Complexity: O(S·N).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	m.store.Ascend(func(c Coord, v T) bool {
		fmt.Fprintf(&sb, "%s = %v\n", c, v)
		return true
	})

	return sb.String()
}

// read resolves a complete coordinate: the stored value or the default.
func (m *Matrix[T]) read(c Coord) T {
	if v, ok := m.store.Get(c); ok {
		return v
	}

	return m.def
}

// write stores v at c, or deletes c when v is the default.
func (m *Matrix[T]) write(c Coord, v T) {
	if v == m.def {
		m.store.Remove(c)
		return
	}
	m.store.Set(c, v)
}
