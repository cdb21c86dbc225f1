// SPDX-License-Identifier: MIT

// Package sparse: fixed-arity handles.
//
// Matrix2 and Matrix3 encode chain depth in the handle type, so a premature
// Get/Set or an extra Index is rejected by the compiler instead of panicking:
//
//	m := sparse.NewMatrix2(0)
//	m.Index(1).Index(8).Set(1) // Matrix2 -> Row2 -> Cell
//	m.Index(1).Get()           // does not compile: Row2 has no Get
//
// Both wrap a plain Matrix (see Unwrap) and share its storage.
package sparse

import "iter"

// Cell is a complete chain: it exposes only Get and Set.
type Cell[T comparable] struct{ c Chain[T] }

// Get reads the cell value or the matrix default.
func (c Cell[T]) Get() T { return c.c.Get() }

// Set writes v; writing the default deletes the cell.
func (c Cell[T]) Set(v T) { c.c.Set(v) }

// Coord returns the cell coordinate.
func (c Cell[T]) Coord() Coord { return c.c.Coord() }

// Matrix2 is a two-dimensional sparse matrix with compile-time arity.
type Matrix2[T comparable] struct{ m *Matrix[T] }

// Row2 is a Matrix2 chain with one component supplied.
type Row2[T comparable] struct{ c Chain[T] }

// NewMatrix2 creates an empty 2-D matrix whose unassigned cells read as def.
func NewMatrix2[T comparable](def T, opts ...Option) *Matrix2[T] {
	return &Matrix2[T]{m: MustNew(2, def, opts...)}
}

// Index selects row i.
func (m *Matrix2[T]) Index(i int) Row2[T] { return Row2[T]{c: m.m.Index(i)} }

// Index selects column j of the row.
func (r Row2[T]) Index(j int) Cell[T] { return Cell[T]{c: r.c.Index(j)} }

// Size returns the number of non-default cells.
func (m *Matrix2[T]) Size() int { return m.m.Size() }

// Entries returns a fresh enumerator over stored cells.
func (m *Matrix2[T]) Entries() *Enumerator[T] { return m.m.Entries() }

// All yields (row, col, value) for every stored cell in order.
func (m *Matrix2[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for c, v := range m.m.All() {
			if !yield([2]int{c[0], c[1]}, v) {
				return
			}
		}
	}
}

// Unwrap returns the underlying N-dimensional matrix.
func (m *Matrix2[T]) Unwrap() *Matrix[T] { return m.m }

// Matrix3 is a three-dimensional sparse matrix with compile-time arity.
type Matrix3[T comparable] struct{ m *Matrix[T] }

// Plane3 is a Matrix3 chain with one component supplied.
type Plane3[T comparable] struct{ c Chain[T] }

// Row3 is a Matrix3 chain with two components supplied.
type Row3[T comparable] struct{ c Chain[T] }

// NewMatrix3 creates an empty 3-D matrix whose unassigned cells read as def.
func NewMatrix3[T comparable](def T, opts ...Option) *Matrix3[T] {
	return &Matrix3[T]{m: MustNew(3, def, opts...)}
}

// Index selects plane i.
func (m *Matrix3[T]) Index(i int) Plane3[T] { return Plane3[T]{c: m.m.Index(i)} }

// Index selects row j of the plane.
func (p Plane3[T]) Index(j int) Row3[T] { return Row3[T]{c: p.c.Index(j)} }

// Index selects column k of the row.
func (r Row3[T]) Index(k int) Cell[T] { return Cell[T]{c: r.c.Index(k)} }

// Size returns the number of non-default cells.
func (m *Matrix3[T]) Size() int { return m.m.Size() }

// Entries returns a fresh enumerator over stored cells.
func (m *Matrix3[T]) Entries() *Enumerator[T] { return m.m.Entries() }

// All yields (i, j, k, value) for every stored cell in order.
func (m *Matrix3[T]) All() iter.Seq2[[3]int, T] {
	return func(yield func([3]int, T) bool) {
		for c, v := range m.m.All() {
			if !yield([3]int{c[0], c[1], c[2]}, v) {
				return
			}
		}
	}
}

// Unwrap returns the underlying N-dimensional matrix.
func (m *Matrix3[T]) Unwrap() *Matrix[T] { return m.m }
