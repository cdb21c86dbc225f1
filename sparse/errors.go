// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// Panics raised on contract violations wrap these sentinels, so a recovered
// value can be matched with errors.Is.
package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDims is returned when a matrix is requested with fewer than two dimensions.
	ErrBadDims = errors.New("sparse: dimensions must be > 1")

	// ErrArity signals that a chain was read/written before all components
	// were supplied, or was extended past the matrix dimensionality.
	ErrArity = errors.New("sparse: chain arity mismatch")

	// ErrNegativeIndex signals a coordinate component below zero.
	ErrNegativeIndex = errors.New("sparse: negative coordinate component")

	// ErrNilMatrix indicates a chain or handle that is not bound to a matrix
	// (e.g., the zero value of Chain).
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNoEntry indicates Entry was called on an enumerator that is not
	// positioned on a stored cell (before the first Next or after the end).
	ErrNoEntry = errors.New("sparse: enumerator not positioned on an entry")
)

// chainErrorf wraps an underlying error with Chain method context.
func chainErrorf(method string, depth, dims int, err error) error {
	return fmt.Errorf("Chain.%s(depth=%d,dims=%d): %w", method, depth, dims, err)
}
