package multiindex_test

import (
	"testing"

	"github.com/katalvlaran/multipole/multiindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidShape verifies the sentinel errors on bad construction
// parameters.
func TestNew_InvalidShape(t *testing.T) {
	_, err := multiindex.New(0, 3)
	assert.ErrorIs(t, err, multiindex.ErrDimension, "dim < 1 must error")

	_, err = multiindex.New(2, -1)
	assert.ErrorIs(t, err, multiindex.ErrOrderRange, "negative order must error")

	_, err = multiindex.New(2, multiindex.MaxTableOrder+1)
	assert.ErrorIs(t, err, multiindex.ErrOrderRange, "order above MaxTableOrder must error")
}

// TestNew_TermCounts checks the combinatorial sizes C(p+D, D) and the
// per-order prefix counts.
func TestNew_TermCounts(t *testing.T) {
	tbl, err := multiindex.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Dim())
	assert.Equal(t, 3, tbl.MaxOrder())
	assert.Equal(t, 10, tbl.TotalTerms(), "C(5,2) = 10")
	assert.Equal(t, 1, tbl.NumTerms(0))
	assert.Equal(t, 3, tbl.NumTerms(1))
	assert.Equal(t, 6, tbl.NumTerms(2))
	assert.Equal(t, 10, tbl.NumTerms(3))

	// Out-of-range orders clamp.
	assert.Equal(t, 0, tbl.NumTerms(-1))
	assert.Equal(t, 10, tbl.NumTerms(99))
}

// TestEnumeration_Ordering verifies the documented ordering: grouped by
// increasing order, ascending lexicographic within an order.
func TestEnumeration_Ordering(t *testing.T) {
	tbl, err := multiindex.New(2, 2)
	require.NoError(t, err)

	want := [][]int{
		{0, 0},
		{0, 1}, {1, 0},
		{0, 2}, {1, 1}, {2, 0},
	}
	require.Equal(t, len(want), tbl.TotalTerms())
	for r, alpha := range want {
		assert.Equal(t, alpha, tbl.Index(r), "rank %d", r)
	}
}

// TestEnumeration_Deterministic verifies that two tables with the same
// shape enumerate identically.
func TestEnumeration_Deterministic(t *testing.T) {
	a, err := multiindex.New(3, 4)
	require.NoError(t, err)
	b, err := multiindex.New(3, 4)
	require.NoError(t, err)

	require.Equal(t, a.TotalTerms(), b.TotalTerms())
	for r := 0; r < a.TotalTerms(); r++ {
		assert.Equal(t, a.Index(r), b.Index(r), "rank %d", r)
	}
}

// TestRankIndex_RoundTrip verifies Rank(Index(r)) == r for every rank,
// and that OrderOf agrees with the component sum.
func TestRankIndex_RoundTrip(t *testing.T) {
	tbl, err := multiindex.New(3, 5)
	require.NoError(t, err)

	for r := 0; r < tbl.TotalTerms(); r++ {
		alpha := tbl.Index(r)
		got, ok := tbl.Rank(alpha)
		require.True(t, ok, "rank %d must be found", r)
		assert.Equal(t, r, got)

		sum := 0
		for _, a := range alpha {
			sum += a
		}
		assert.Equal(t, sum, tbl.OrderOf(r))
	}

	// Unknown / malformed lookups.
	_, ok := tbl.Rank([]int{9, 9, 9})
	assert.False(t, ok, "order above max must not be found")
	_, ok = tbl.Rank([]int{1, 2})
	assert.False(t, ok, "wrong length must not be found")
	_, ok = tbl.Rank([]int{-1, 0, 1})
	assert.False(t, ok, "negative component must not be found")
}

// TestFactorial checks exact small factorials and the range sentinels.
func TestFactorial(t *testing.T) {
	f, err := multiindex.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	f, err = multiindex.Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, 120.0, f)

	_, err = multiindex.Factorial(-1)
	assert.ErrorIs(t, err, multiindex.ErrOrderRange)
	_, err = multiindex.Factorial(2*multiindex.MaxTableOrder + 1)
	assert.ErrorIs(t, err, multiindex.ErrOrderRange)
}

// TestConstants checks inverse factorials, multinomial coefficients and
// raw powers on exactly representable values.
func TestConstants(t *testing.T) {
	tbl, err := multiindex.New(2, 4)
	require.NoError(t, err)

	r, ok := tbl.Rank([]int{2, 1})
	require.True(t, ok)
	assert.Equal(t, 0.5, tbl.InverseFactorial(r), "1/(2!·1!)")

	m, err := tbl.Multinomial([]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, m, "2!/(1!·1!)")

	m, err = tbl.Multinomial([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	_, err = tbl.Multinomial([]int{1})
	assert.ErrorIs(t, err, multiindex.ErrIndexMismatch)
	_, err = tbl.Multinomial([]int{-1, 1})
	assert.ErrorIs(t, err, multiindex.ErrOrderRange)

	p, err := tbl.Power([]float64{2, 3}, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 12.0, p, "2²·3¹")

	_, err = tbl.Power([]float64{2}, []int{2, 1})
	assert.ErrorIs(t, err, multiindex.ErrIndexMismatch)
}

// TestMonomials verifies the recurrence-driven monomial table against
// direct powers on exact inputs.
func TestMonomials(t *testing.T) {
	tbl, err := multiindex.New(2, 2)
	require.NoError(t, err)

	u := []float64{2, 3}
	out := make([]float64, tbl.NumTerms(2))
	require.NoError(t, tbl.Monomials(u, 2, out))

	// Ranks follow TestEnumeration_Ordering: (0,0),(0,1),(1,0),(0,2),(1,1),(2,0).
	assert.Equal(t, []float64{1, 3, 2, 9, 6, 4}, out)

	// Errors.
	assert.ErrorIs(t, tbl.Monomials([]float64{1}, 2, out), multiindex.ErrIndexMismatch)
	assert.ErrorIs(t, tbl.Monomials(u, 3, out), multiindex.ErrOrderRange)
	assert.ErrorIs(t, tbl.Monomials(u, -1, out), multiindex.ErrOrderRange)
	assert.ErrorIs(t, tbl.Monomials(u, 2, out[:3]), multiindex.ErrBufferSize)
}

// TestMonomials_MatchesPower cross-checks every rank of a larger table.
func TestMonomials_MatchesPower(t *testing.T) {
	tbl, err := multiindex.New(3, 6)
	require.NoError(t, err)

	u := []float64{0.5, -1.5, 2.0}
	out := make([]float64, tbl.TotalTerms())
	require.NoError(t, tbl.Monomials(u, 6, out))

	for r := 0; r < tbl.TotalTerms(); r++ {
		want, perr := tbl.Power(u, tbl.Index(r))
		require.NoError(t, perr)
		assert.InDelta(t, want, out[r], 1e-12, "rank %d (%v)", r, tbl.Index(r))
	}
}

// TestOutOfRangeLookups verifies the documented degraded returns for bad
// ranks rather than panics.
func TestOutOfRangeLookups(t *testing.T) {
	tbl, err := multiindex.New(2, 1)
	require.NoError(t, err)

	assert.Nil(t, tbl.Index(-1))
	assert.Nil(t, tbl.Index(tbl.TotalTerms()))
	assert.Equal(t, -1, tbl.OrderOf(99))
	assert.Equal(t, 0.0, tbl.InverseFactorial(99))
}
