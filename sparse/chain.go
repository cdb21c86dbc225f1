// SPDX-License-Identifier: MIT

package sparse

// Chain is one in-flight chained access: the first Depth() components of a
// coordinate, supplied one per Index call.
//
// Chain is a value type. Each Index call returns a new Chain holding its own
// copy of the components, so a partial chain can be extended several times,
// and chains begun back-to-back on the same matrix never share a buffer:
//
//	row := m.Index(4)
//	a := row.Index(1) // [4][1]
//	b := row.Index(2) // [4][2], a is unaffected
//
// Get and Set are valid only on a complete chain (Depth() == Dims()).
// Calling them earlier, or calling Index on a complete chain, panics with an
// error wrapping ErrArity.
type Chain[T comparable] struct {
	m     *Matrix[T]
	coord Coord
}

// Index supplies the next coordinate component.
// Panics (ErrArity) if the chain is already complete, (ErrNegativeIndex) if i < 0.
// Complexity: O(Depth()).
func (c Chain[T]) Index(i int) Chain[T] {
	dims := c.mustBound("Index")
	if len(c.coord) >= dims {
		panic(chainErrorf("Index", len(c.coord), dims, ErrArity))
	}
	if i < 0 {
		panic(chainErrorf("Index", len(c.coord), dims, ErrNegativeIndex))
	}
	next := make(Coord, len(c.coord)+1, dims)
	copy(next, c.coord)
	next[len(c.coord)] = i

	return Chain[T]{m: c.m, coord: next}
}

// Depth returns how many components have been supplied.
func (c Chain[T]) Depth() int { return len(c.coord) }

// Complete reports whether all N components have been supplied.
func (c Chain[T]) Complete() bool {
	return c.m != nil && len(c.coord) == c.m.dims
}

// Coord returns a copy of the components supplied so far.
func (c Chain[T]) Coord() Coord { return c.coord.Clone() }

// Get reads the cell: the stored value, or the matrix default if none.
// Never mutates the store. Panics (ErrArity) on an incomplete chain.
func (c Chain[T]) Get() T {
	v, err := c.TryGet()
	if err != nil {
		panic(err)
	}

	return v
}

// Set writes v to the cell. Writing the matrix default deletes the cell
// (a no-op if it was never stored). Panics (ErrArity) on an incomplete chain.
func (c Chain[T]) Set(v T) {
	if err := c.TrySet(v); err != nil {
		panic(err)
	}
}

// TryGet is Get returning ErrArity / ErrNilMatrix instead of panicking.
func (c Chain[T]) TryGet() (T, error) {
	if err := c.checkComplete("Get"); err != nil {
		var zero T
		return zero, err
	}

	return c.m.read(c.coord), nil
}

// TrySet is Set returning ErrArity / ErrNilMatrix instead of panicking.
func (c Chain[T]) TrySet(v T) error {
	if err := c.checkComplete("Set"); err != nil {
		return err
	}
	c.m.write(c.coord, v)

	return nil
}

func (c Chain[T]) checkComplete(method string) error {
	if c.m == nil {
		return chainErrorf(method, len(c.coord), 0, ErrNilMatrix)
	}
	if len(c.coord) != c.m.dims {
		return chainErrorf(method, len(c.coord), c.m.dims, ErrArity)
	}

	return nil
}

// mustBound returns the matrix dimensionality or panics on a zero Chain.
func (c Chain[T]) mustBound(method string) int {
	if c.m == nil {
		panic(chainErrorf(method, len(c.coord), 0, ErrNilMatrix))
	}

	return c.m.dims
}
