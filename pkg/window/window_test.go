package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, 228.0, Truncate(228.87))
	assert.Equal(t, 0.0, Truncate(0.99))
	assert.Equal(t, -3.0, Truncate(-3.7))
	assert.Equal(t, 12.0, Truncate(12))
}

func TestBuffer_FillAndReset(t *testing.T) {
	b := New(12)
	assert.Equal(t, 12, b.Size())
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Full())

	for i := 0; i < 11; i++ {
		assert.False(t, b.Add(float64(i)+0.6), "sample %d", i)
	}
	assert.True(t, b.Add(11.9))
	assert.True(t, b.Full())

	w := b.Window()
	require.Len(t, w, 12)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, w)

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Full())
	assert.Equal(t, 12, b.Size())
}

func TestBuffer_NoAliasing(t *testing.T) {
	b := New(3)
	b.Add(1)
	b.Add(2)
	b.Add(3)

	first := b.Window()
	b.Reset()
	b.Add(7)
	b.Add(8)
	b.Add(9)

	assert.Equal(t, []float64{1, 2, 3}, first)
	assert.Equal(t, []float64{7, 8, 9}, b.Window())
}

func TestBuffer_AddWhenFull(t *testing.T) {
	b := New(2)
	b.Add(1)
	b.Add(2)

	assert.True(t, b.Add(3))
	assert.Equal(t, []float64{1, 2}, b.Window())
}

func TestNew_InvalidSize(t *testing.T) {
	b := New(0)
	assert.Equal(t, 1, b.Size())
}
