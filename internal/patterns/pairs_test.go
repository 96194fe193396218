package patterns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMDPairs_Scenario(t *testing.T) {
	pairs, err := MDPairs(scenario(), scenarioLabels)
	require.NoError(t, err)
	require.Len(t, pairs, 4)

	mm, err := pairs["mm"].Lookup("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, mm, "B and C are never missing together")

	mr, err := pairs["mr"].Lookup("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 2.0, mr, "B missing while A observed in two rows")

	wantRR := mat.NewDense(3, 3, []float64{
		4, 2, 3,
		2, 2, 1,
		3, 1, 3,
	})
	assert.True(t, mat.Equal(wantRR, pairs["rr"].Data))
	assert.Equal(t, scenarioLabels, pairs["rr"].Index)
	assert.Equal(t, scenarioLabels, pairs["rr"].Columns)
}

func TestMDPairs_PositionalLabels(t *testing.T) {
	pairs, err := MDPairs(scenario(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, pairs["rm"].Columns)
}

func TestComputePairs_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(40)
		p := 2 + rng.Intn(8)
		data := randomIndicator(rng, n, p, rng.Float64())

		pr, err := ComputePairs(data)
		require.NoError(t, err)

		var total mat.Dense
		total.Add(pr.RR, pr.RM)
		total.Add(&total, pr.MR)
		total.Add(&total, pr.MM)
		for j := 0; j < p; j++ {
			for k := 0; k < p; k++ {
				require.Equal(t, float64(n), total.At(j, k), "trial %d cell [%d,%d]", trial, j, k)
			}
		}
		require.True(t, mat.Equal(pr.MR, pr.RM.T()), "mr must equal rmᵀ (trial %d)", trial)
		require.True(t, mat.Equal(pr.RR, pr.RR.T()), "rr must be symmetric (trial %d)", trial)
		require.True(t, mat.Equal(pr.MM, pr.MM.T()), "mm must be symmetric (trial %d)", trial)
	}
}

func TestMDPairs_Idempotent(t *testing.T) {
	data := randomIndicator(rand.New(rand.NewSource(3)), 30, 5, 0.3)
	first, err := MDPairs(data, nil)
	require.NoError(t, err)
	second, err := MDPairs(data, nil)
	require.NoError(t, err)
	for _, k := range []string{"rr", "rm", "mr", "mm"} {
		requireSameBits(t, first[k], second[k])
	}
}
