// SPDX-License-Identifier: MIT

// Package sparse provides an arbitrary-dimension sparse associative matrix.
//
// 🚀 What is a sparse matrix here?
//
//	A Matrix[T] is addressed by N non-negative integer coordinates, where N > 1
//	is fixed at construction. Only cells that hold a value different from the
//	matrix-wide default occupy memory; every other cell reads back as the
//	default. Writing the default into a cell deletes it.
//
// ✨ Key features:
//   - ordered Coordinate Store on a B-tree (lexicographic coordinate order)
//   - chained indexing: m.Index(i).Index(j).Get() / .Set(v)
//   - every chain owns a private coordinate buffer, so interleaved chains
//     never corrupt each other
//   - compile-time arity for 2-D and 3-D via Matrix2 / Matrix3 handles
//   - lazy, ordered enumeration of non-default cells (Enumerator, All)
//
// ⚙️ Usage:
//
//	m := sparse.MustNew[int](2, 0)
//	m.Index(1).Index(8).Set(1)
//	v := m.Index(1).Index(8).Get() // 1
//	_ = m.Index(3).Index(3).Get()  // 0 (default, not stored)
//
//	for c, v := range m.All() {
//		fmt.Println(c, "=", v)
//	}
//
// Arity mismatches (reading a chain before all N components are supplied, or
// supplying more than N) are programmer errors and panic with an error that
// wraps ErrArity. Use TryGet/TrySet for a checked variant.
//
// Concurrency: a Matrix is not safe for concurrent use. Mutating a matrix
// while an Enumerator over it is in flight is undefined; callers must impose
// their own exclusive-access discipline.
//
// Performance:
//
//   - Index: O(k) per step (buffer copy, k = depth)
//   - Get/Set: O(N·log S), S = Size()
//   - Enumerator.Next: O(N·log S)
package sparse
