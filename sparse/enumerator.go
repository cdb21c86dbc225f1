// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Entry is one stored cell: its coordinate and value.
type Entry[T any] struct {
	Coord Coord
	Value T
}

// Tuple flattens the entry into the fixed-arity record (c1, ..., cN, value).
func (e Entry[T]) Tuple() []any {
	out := make([]any, 0, len(e.Coord)+1)
	for _, v := range e.Coord {
		out = append(out, v)
	}

	return append(out, e.Value)
}

// String renders the entry as "[c1]...[cN] = v".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%s = %v", e.Coord, e.Value)
}

// enumerator positions.
const (
	enumBefore = iota // before the first entry; Next not yet called
	enumAt            // positioned on cur
	enumDone          // past the last entry
)

// Enumerator is a lazy, forward, one-shot walk over a matrix's stored cells
// in coordinate order:
//
//	e := m.Entries()
//	for e.Next() {
//		fmt.Println(e.Entry())
//	}
//
// Each Next re-seeks the store just past the last yielded coordinate, so no
// snapshot is taken. Mutating the matrix during a walk is the caller's
// responsibility: the result is unspecified. Obtain a fresh Enumerator to
// iterate again.
type Enumerator[T any] struct {
	store Store[T]
	state int
	cur   Entry[T]
}

func newEnumerator[T any](store Store[T]) *Enumerator[T] {
	return &Enumerator[T]{store: store, state: enumBefore}
}

// Next advances to the next stored cell and reports whether there is one.
// Once Next returns false it keeps returning false.
// Complexity: O(N·log S).
func (e *Enumerator[T]) Next() bool {
	var (
		found bool
		next  Entry[T]
	)
	take := func(c Coord, v T) bool {
		next = Entry[T]{Coord: c.Clone(), Value: v}
		found = true
		return false
	}

	switch e.state {
	case enumDone:
		return false
	case enumBefore:
		e.store.Ascend(take)
	case enumAt:
		last := e.cur.Coord
		e.store.AscendFrom(last, func(c Coord, v T) bool {
			if Compare(c, last) == 0 {
				return true // skip the entry we are standing on
			}
			return take(c, v)
		})
	}

	if !found {
		e.state = enumDone
		e.cur = Entry[T]{}
		return false
	}
	e.state = enumAt
	e.cur = next

	return true
}

// HasNext reports whether a call to Next would succeed, without advancing.
func (e *Enumerator[T]) HasNext() bool {
	peek := *e

	return peek.Next()
}

// Entry returns the current cell. The returned Coord is the caller's to keep.
// Panics (ErrNoEntry) before the first successful Next or after the end.
func (e *Enumerator[T]) Entry() Entry[T] {
	if e.state != enumAt {
		panic(fmt.Errorf("Enumerator.Entry: %w", ErrNoEntry))
	}

	return Entry[T]{Coord: e.cur.Coord.Clone(), Value: e.cur.Value}
}

// Equal reports whether e and other refer to the same position of the same store.
// Stores are compared by identity, so Store implementations must be comparable
// (pointer receivers are).
func (e *Enumerator[T]) Equal(other *Enumerator[T]) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.store != other.store || e.state != other.state {
		return false
	}
	if e.state != enumAt {
		return true
	}

	return Compare(e.cur.Coord, other.cur.Coord) == 0
}
