package multiindex_test

import (
	"fmt"

	"github.com/katalvlaran/multipole/multiindex"
)

// ExampleNew enumerates the 2-D multi-indices up to order 2 in their
// stable rank order.
func ExampleNew() {
	tbl, _ := multiindex.New(2, 2)
	for r := 0; r < tbl.TotalTerms(); r++ {
		fmt.Println(r, tbl.Index(r))
	}
	// Output:
	// 0 [0 0]
	// 1 [0 1]
	// 2 [1 0]
	// 3 [0 2]
	// 4 [1 1]
	// 5 [2 0]
}

// ExampleTable_Monomials evaluates every monomial u^α up to order 2 with
// one multiply per term.
func ExampleTable_Monomials() {
	tbl, _ := multiindex.New(2, 2)
	out := make([]float64, tbl.NumTerms(2))
	_ = tbl.Monomials([]float64{2, 3}, 2, out)
	fmt.Println(out)
	// Output:
	// [1 3 2 9 6 4]
}
