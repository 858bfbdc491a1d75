// Package window holds the fixed-capacity buffer that collects samples for one aggregation window.
package window

import (
	"math"
	"slices"
)

// Buffer collects samples until a window of fixed capacity is full.
// It is owned by a single goroutine and is not safe for concurrent use.
type Buffer struct {
	samples []float64
}

// New creates a buffer holding windows of size samples.
func New(size int) *Buffer {
	if size <= 0 {
		size = 1
	}
	return &Buffer{samples: make([]float64, 0, size)}
}

// Truncate drops the fractional part of a reading, as the sensor values are integral.
func Truncate(v float64) float64 {
	return math.Trunc(v)
}

// Add appends a truncated sample and reports whether the window is now full.
// Adding to a full buffer is ignored and reports true.
func (b *Buffer) Add(v float64) bool {
	if b.Full() {
		return true
	}
	b.samples = append(b.samples, Truncate(v))
	return b.Full()
}

// Full reports whether the buffer holds a complete window.
func (b *Buffer) Full() bool {
	return len(b.samples) == cap(b.samples)
}

// Len returns the number of buffered samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Size returns the window capacity.
func (b *Buffer) Size() int {
	return cap(b.samples)
}

// Window returns a copy of the buffered samples in sampling order.
func (b *Buffer) Window() []float64 {
	return slices.Clone(b.samples)
}

// Reset clears the buffer for the next window, keeping its capacity.
func (b *Buffer) Reset() {
	b.samples = b.samples[:0]
}
