package patterns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RejectsDegenerateShapes(t *testing.T) {
	cases := []struct {
		name   string
		data   Dataset
		labels []string
	}{
		{"single column", Indicator{{false}, {true}}, nil},
		{"no rows", Indicator{}, nil},
		{"nil dataset", nil, nil},
		{"label mismatch", scenario(), []string{"A", "B"}},
		{"empty labels", scenario(), []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validate("test", tc.data, tc.labels)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDimension)
			var de *DimensionError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "test", de.Op)
		})
	}
}

func TestValidate_ResolvesLabels(t *testing.T) {
	labels, err := validate("test", scenario(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, labels)

	in := []string{"x", "y", "z"}
	labels, err = validate("test", scenario(), in)
	require.NoError(t, err)
	assert.Equal(t, in, labels)
	labels[0] = "changed"
	assert.Equal(t, "x", in[0], "resolved labels must not alias the caller's slice")
}

func TestEveryStatisticRejectsSingleColumn(t *testing.T) {
	one := Floats{{1}, {2}, {3}}
	_, err := MDPairs(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = MDPattern(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = Inbound(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = Outbound(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = Influx(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = Outflux(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = Flux(one, nil)
	assert.ErrorIs(t, err, ErrDimension)
	_, err = ComputePairs(one)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestDimensionError_Message(t *testing.T) {
	err := &DimensionError{Op: "Flux", Rows: 3, Cols: 1, Labels: -1, Reason: "at least 2 columns are required"}
	assert.Equal(t, "Flux: at least 2 columns are required (rows=3, cols=1)", err.Error())
	err.Labels = 2
	assert.Contains(t, err.Error(), "labels=2")
}
