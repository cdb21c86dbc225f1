// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord identifies one matrix cell: exactly N non-negative components.
// Coordinates are ordered lexicographically (see Compare).
type Coord []int

// Compare orders a and b lexicographically: the first differing component
// decides, and a shorter coordinate that is a prefix of the longer sorts first.
// Returns -1, 0 or +1.
// Complexity: O(min(len(a), len(b))).
func Compare(a, b Coord) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Equal reports whether c and other hold the same components.
func (c Coord) Equal(other Coord) bool {
	return Compare(c, other) == 0
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	if c == nil {
		return nil
	}
	out := make(Coord, len(c))
	copy(out, c)

	return out
}

// String renders c in subscript form, e.g. "[1][8]".
func (c Coord) String() string {
	var sb strings.Builder
	for _, v := range c {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(']')
	}

	return sb.String()
}

// validate checks that c is a complete, non-negative coordinate for a
// dims-dimensional matrix.
func (c Coord) validate(dims int) error {
	if len(c) != dims {
		return fmt.Errorf("coord %v has %d components, want %d: %w", []int(c), len(c), dims, ErrArity)
	}
	for _, v := range c {
		if v < 0 {
			return fmt.Errorf("coord %v: %w", []int(c), ErrNegativeIndex)
		}
	}

	return nil
}
