package patterns

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbound_Scenario(t *testing.T) {
	tb, err := Inbound(scenario(), scenarioLabels)
	require.NoError(t, err)
	nan := math.NaN()
	want := [][]float64{
		{nan, nan, nan}, // A is never missing
		{1, 0, 1},
		{1, 1, 0},
	}
	for i, row := range want {
		for j, v := range row {
			if math.IsNaN(v) {
				assert.True(t, math.IsNaN(tb.At(i, j)), "cell [%d,%d]", i, j)
				continue
			}
			assert.Equal(t, v, tb.At(i, j), "cell [%d,%d]", i, j)
		}
	}
}

func TestOutbound_Scenario(t *testing.T) {
	tb, err := Outbound(scenario(), scenarioLabels)
	require.NoError(t, err)
	want := [][]float64{
		{0, 0.5, 0.25},
		{0, 0, 0.5},
		{0, 2.0 / 3.0, 0},
	}
	for i, row := range want {
		for j, v := range row {
			assert.InDelta(t, v, tb.At(i, j), 1e-12, "cell [%d,%d]", i, j)
		}
	}
}

func TestInfluxOutflux_Scenario(t *testing.T) {
	in, err := Influx(scenario(), scenarioLabels)
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, in.Index)
	assert.Equal(t, scenarioLabels, in.Columns)
	assert.InDeltaSlice(t, []float64{0, 4.0 / 9.0, 2.0 / 9.0}, in.Row(0), 1e-12)

	out, err := Outflux(scenario(), scenarioLabels)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.0 / 3.0, 2.0 / 3.0}, out.Row(0), 1e-12)
}

func TestCoefficients_FullyObserved(t *testing.T) {
	data := filled(6, 4, 2.5)

	in, err := Inbound(data, nil)
	require.NoError(t, err)
	requireAllNaN(t, in)

	// rm is zero and rr is n, so outbound is 0 rather than undefined.
	out, err := Outbound(data, nil)
	require.NoError(t, err)
	requireAll(t, out, 0)

	influx, err := Influx(data, nil)
	require.NoError(t, err)
	requireAll(t, influx, 0)

	// No missing cell anywhere: the outflux denominator is 0.
	outflux, err := Outflux(data, nil)
	require.NoError(t, err)
	requireAllNaN(t, outflux)
}

func TestCoefficients_FullyMissing(t *testing.T) {
	data := filled(3, 3, math.NaN())

	in, err := Inbound(data, nil)
	require.NoError(t, err)
	requireAll(t, in, 0)

	out, err := Outbound(data, nil)
	require.NoError(t, err)
	requireAllNaN(t, out)

	influx, err := Influx(data, nil)
	require.NoError(t, err)
	requireAllNaN(t, influx)

	outflux, err := Outflux(data, nil)
	require.NoError(t, err)
	requireAll(t, outflux, 0)
}

func TestFluxCoefficients_ExtremeVariables(t *testing.T) {
	nan := math.NaN()
	// X always observed, Y always missing, Z mixed.
	data := Floats{
		{1, nan, 1},
		{2, nan, nan},
		{3, nan, 3},
	}
	labels := []string{"X", "Y", "Z"}

	in, err := Influx(data, labels)
	require.NoError(t, err)
	x, _ := in.Lookup("0", "X")
	y, _ := in.Lookup("0", "Y")
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)

	out, err := Outflux(data, labels)
	require.NoError(t, err)
	x, _ = out.Lookup("0", "X")
	y, _ = out.Lookup("0", "Y")
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}

func TestCoefficients_StayInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		data := randomIndicator(rng, 1+rng.Intn(30), 2+rng.Intn(6), rng.Float64())
		pr, err := ComputePairs(data)
		require.NoError(t, err)
		check := func(v float64) {
			if !math.IsNaN(v) {
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
		for _, m := range []interface{ At(int, int) float64 }{pr.Inbound(), pr.Outbound()} {
			p, _ := pr.RR.Dims()
			for j := 0; j < p; j++ {
				for k := 0; k < p; k++ {
					check(m.At(j, k))
				}
			}
		}
		for _, v := range append(pr.Influx(), pr.Outflux()...) {
			check(v)
		}
	}
}

func TestCoefficients_Idempotent(t *testing.T) {
	data := randomIndicator(rand.New(rand.NewSource(9)), 25, 4, 0.4)
	for name, fn := range map[string]func(Dataset, []string) (*Table, error){
		"inbound": Inbound, "outbound": Outbound, "influx": Influx, "outflux": Outflux,
	} {
		a, err := fn(data, nil)
		require.NoError(t, err, name)
		b, err := fn(data, nil)
		require.NoError(t, err, name)
		requireSameBits(t, a, b)
	}
}
