package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPAA_SegmentLaw(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	got, err := PAA(series, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.5, 6.5, 10.5}, got, 1e-9)

	got, err = PAA(series, 6)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 3.5, 5.5, 7.5, 9.5, 11.5}, got, 1e-9)

	got, err = PAA(series, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6.5}, got, 1e-9)
}

func TestPAA_IdentityAtFullResolution(t *testing.T) {
	series := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8}

	got, err := PAA(series, len(series))
	require.NoError(t, err)
	assert.Equal(t, series, got)

	// The result must not alias the input.
	got[0] = 100
	assert.Equal(t, 3.0, series[0])
}

func TestPAA_InvalidSegmentCount(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	for _, w := range []int{0, -1, 5, 7, 24} {
		_, err := PAA(series, w)
		assert.ErrorIs(t, err, ErrSegmentCount, "w=%d", w)
	}

	_, err := PAA(nil, 1)
	assert.ErrorIs(t, err, ErrSegmentCount)
}
