// Package lvsparse is a sparse, arbitrary-dimension associative matrix for Go.
//
// 🚀 What is lvsparse?
//
//	A container addressed by N integer coordinates where only explicitly
//	assigned cells consume memory and every other cell reads back as a
//	fixed default value:
//		• Ordered coordinate store on a B-tree
//		• Chained indexing: m.Index(i).Index(j).Get() / .Set(v)
//		• Default-value elision: writing the default deletes the cell
//		• Lazy, ordered enumeration of stored cells
//		• Compile-time arity for 2-D and 3-D (Matrix2, Matrix3)
//
// Layout:
//
//	sparse/          — Matrix, Chain, Store, Enumerator, typed handles
//	cmd/sparsedemo/  — diagonal sweep demo (cobra CLI, zap logging, YAML seed)
//
//	go get github.com/katalvlaran/lvsparse/sparse
package lvsparse
