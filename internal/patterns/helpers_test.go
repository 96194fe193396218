package patterns

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenario is a 4×3 dataset: A fully observed, B missing in rows 1 and 3,
// C missing in row 2.
func scenario() Indicator {
	return Indicator{
		{false, false, false},
		{false, true, false},
		{false, false, true},
		{false, true, false},
	}
}

var scenarioLabels = []string{"A", "B", "C"}

// randomIndicator draws an n×p indicator with the given missing rate.
func randomIndicator(rng *rand.Rand, n, p int, rate float64) Indicator {
	m := make(Indicator, n)
	for i := range m {
		m[i] = make([]bool, p)
		for j := range m[i] {
			m[i][j] = rng.Float64() < rate
		}
	}
	return m
}

// filled returns an n×p Floats dataset where every cell is v.
func filled(n, p int, v float64) Floats {
	f := make(Floats, n)
	for i := range f {
		f[i] = make([]float64, p)
		for j := range f[i] {
			f[i][j] = v
		}
	}
	return f
}

// requireSameBits compares two tables bit for bit, NaN included.
func requireSameBits(t *testing.T, a, b *Table) {
	t.Helper()
	require.Equal(t, a.Index, b.Index)
	require.Equal(t, a.Columns, b.Columns)
	ar, ac := a.Dims()
	br, bc := b.Dims()
	require.Equal(t, ar, br)
	require.Equal(t, ac, bc)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			require.Equal(t, math.Float64bits(a.At(i, j)), math.Float64bits(b.At(i, j)), "cell [%d,%d]", i, j)
		}
	}
}

// requireAllNaN asserts every cell of tb is NaN.
func requireAllNaN(t *testing.T, tb *Table) {
	t.Helper()
	r, c := tb.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.True(t, math.IsNaN(tb.At(i, j)), "cell [%d,%d] = %v", i, j, tb.At(i, j))
		}
	}
}

// requireAll asserts every cell of tb equals want.
func requireAll(t *testing.T, tb *Table, want float64) {
	t.Helper()
	r, c := tb.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Equal(t, want, tb.At(i, j), "cell [%d,%d]", i, j)
		}
	}
}
