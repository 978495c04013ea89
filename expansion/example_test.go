package expansion_test

import (
	"fmt"

	"github.com/katalvlaran/multipole/expansion"
	"github.com/katalvlaran/multipole/multiindex"
)

// ExampleFarField_Accumulate summarizes a single unit-weight reference
// point at distance 2 from the center: the folded moments w·u^α/α! for
// orders 0..2 are exactly [1 2 2], and coefficient 0 is the weight sum.
func ExampleFarField_Accumulate() {
	tbl, _ := multiindex.New(1, 2)
	far, _ := expansion.NewFarField([]float64{0}, tbl, monoAux{})

	_ = far.Accumulate([]float64{2}, 1, 2)

	fmt.Println(far.Coefficients())
	fmt.Println(far.WeightSum())
	// Output:
	// [1 2 2]
	// 1
}

// ExampleFarField_AccumulateCoeffs accumulates a small batch and reads
// the zeroth moment back: the exact sum of the weights.
func ExampleFarField_AccumulateCoeffs() {
	tbl, _ := multiindex.New(2, 3)
	far, _ := expansion.NewFarField([]float64{0, 0}, tbl, monoAux{})

	data := makeDense(3, 2, []float64{
		0.5, 0.25,
		-0.5, 1.0,
		0.25, -0.75,
	})
	_ = far.AccumulateCoeffs(data, []float64{0.5, 1.25, 0.25}, 0, 3, 3)

	fmt.Println(far.WeightSum())
	// Output:
	// 2
}

// ExampleFarField_TranslateToLocal pushes a far-field summary through the
// far→local operator and evaluates the resulting polynomial near its
// center.
func ExampleFarField_TranslateToLocal() {
	tbl, _ := multiindex.New(1, 2)
	far, _ := expansion.NewFarField([]float64{0}, tbl, monoAux{})
	_ = far.Accumulate([]float64{0}, 1, 2)

	local, _ := expansion.NewLocal([]float64{1}, tbl, monoAux{})
	_ = far.TranslateToLocal(local, 2)

	v, _ := local.EvaluateField([]float64{1.5}, 2)
	fmt.Println(v)
	// Output:
	// 0.625
}
