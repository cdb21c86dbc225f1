package sparse_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// ExampleMatrix_diagonals fills the diagonal and anti-diagonal of a 10×10
// sweep and prints the interior block, the size and the stored cells.
func ExampleMatrix_diagonals() {
	m := sparse.MustNew(2, 0)
	for i := 0; i < 10; i++ {
		m.Index(i).Index(i).Set(i)
		m.Index(i).Index(9 - i).Set(i)
	}

	for i := 1; i < 9; i++ {
		row := make([]string, 0, 8)
		for j := 1; j < 9; j++ {
			row = append(row, strconv.Itoa(m.Index(i).Index(j).Get()))
		}
		fmt.Println(strings.Join(row, " "))
	}
	fmt.Println("size =", m.Size())

	e := m.Entries()
	for n := 0; n < 3 && e.Next(); n++ {
		fmt.Println(e.Entry())
	}

	// Output:
	// 1 0 0 0 0 0 0 1
	// 0 2 0 0 0 0 2 0
	// 0 0 3 0 0 3 0 0
	// 0 0 0 4 4 0 0 0
	// 0 0 0 5 5 0 0 0
	// 0 0 6 0 0 6 0 0
	// 0 7 0 0 0 0 7 0
	// 8 0 0 0 0 0 0 8
	// size = 18
	// [1][1] = 1
	// [1][8] = 1
	// [2][2] = 2
}

// ExampleChain_TryGet shows the checked accessors on a partial chain.
func ExampleChain_TryGet() {
	m := sparse.MustNew(3, -1)
	m.Index(0).Index(0).Index(0).Set(5)

	_, err := m.Index(0).Index(0).TryGet()
	fmt.Println(errors.Is(err, sparse.ErrArity))

	v, _ := m.Index(0).Index(0).Index(1).TryGet()
	fmt.Println(v, m.Size())

	// Output:
	// true
	// -1 1
}

// ExampleMatrix2 uses the compile-time 2-D handle.
func ExampleMatrix2() {
	m := sparse.NewMatrix2("")
	m.Index(0).Index(1).Set("b")
	m.Index(0).Index(0).Set("a")
	m.Index(0).Index(1).Set("") // deletes

	for c, v := range m.All() {
		fmt.Println(c, v)
	}

	// Output:
	// [0 0] a
}
