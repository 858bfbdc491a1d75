package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_LowTier(t *testing.T) {
	window := []float64{5, 5, 5, 2, 2, 9, 9, 9, 9, 1, 1, 1}

	r, err := Process(window, DefaultSmoothingFactor)
	require.NoError(t, err)

	assert.Equal(t, window, r.Window)
	assert.Less(t, r.StdDev, float64(MediumStdDev))
	assert.Equal(t, TierLow, r.Tier)
	assert.Equal(t, 1, r.W)
	assert.Equal(t, "12-into-1", r.Aggregation())
	require.Len(t, r.PAA, 1)
	assert.InDelta(t, 58.0/12.0, r.PAA[0], 1e-9)

	assert.Equal(t, []float64{5, 2, 9, 1}, RunValues(r.RLE))
	assert.InDelta(t, 4.0/12.0, r.CompressionRatio(), 1e-9)

	assert.Equal(t, 3, r.SaxW)
	assert.Len(t, r.SAX.Symbols, 3)

	assert.Equal(t, DefaultSmoothingFactor, r.Alpha)
	assert.Len(t, r.EMA, WindowSize)
	assert.Equal(t, window[0], r.EMA[0])
}

func TestProcess_MediumTier(t *testing.T) {
	window := []float64{100, 120, 110, 130, 150, 140, 160, 170, 130, 120, 110, 100}

	r, err := Process(window, 0.5)
	require.NoError(t, err)

	assert.Equal(t, TierMedium, r.Tier)
	assert.Equal(t, 3, r.W)
	assert.Equal(t, "4-into-1", r.Aggregation())
	assert.InDeltaSlice(t, []float64{115, 155, 115}, r.PAA, 1e-9)
	assert.Equal(t, 6, r.SaxW)
	assert.Len(t, r.SAX.Symbols, 6)
	assert.Equal(t, 0.5, r.Alpha)
}

func TestProcess_HighTier(t *testing.T) {
	window := []float64{0, 500, 0, 500, 0, 500, 0, 500, 0, 500, 0, 500}

	r, err := Process(window, DefaultSmoothingFactor)
	require.NoError(t, err)

	assert.Equal(t, TierHigh, r.Tier)
	assert.Equal(t, WindowSize, r.W)
	assert.Equal(t, "no aggregation", r.Aggregation())
	assert.Equal(t, window, r.PAA)
	assert.Equal(t, WindowSize, r.SaxW)
	assert.Equal(t, "afafafafafaf", r.SAX.Symbols)
}

func TestProcess_ConstantWindow(t *testing.T) {
	window := []float64{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}

	r, err := Process(window, DefaultSmoothingFactor)
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.StdDev)
	assert.Equal(t, TierLow, r.Tier)
	assert.True(t, r.SAX.Constant)
	assert.Equal(t, "ddd", r.SAX.Symbols)
	assert.Len(t, r.RLE, 1)
}

func TestProcess_OutputsAreLossy(t *testing.T) {
	windows := [][]float64{
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12},
		{300, 0, 12, 900, 4, 4, 4, 18, 250, 1, 0, 0},
	}

	for _, window := range windows {
		r, err := Process(window, DefaultSmoothingFactor)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(r.PAA), WindowSize)
		assert.LessOrEqual(t, len(r.RLE), WindowSize)
		assert.LessOrEqual(t, len(r.SAX.Symbols), WindowSize)
		assert.LessOrEqual(t, len(r.EMA), WindowSize)
	}
}

func TestProcess_CopiesWindow(t *testing.T) {
	window := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	r, err := Process(window, DefaultSmoothingFactor)
	require.NoError(t, err)

	window[0] = 1000
	assert.Equal(t, 1.0, r.Window[0])
}

func TestProcess_WrongSize(t *testing.T) {
	_, err := Process([]float64{1, 2, 3}, DefaultSmoothingFactor)
	assert.ErrorIs(t, err, ErrWindowSize)

	_, err = Process(nil, DefaultSmoothingFactor)
	assert.ErrorIs(t, err, ErrWindowSize)
}
