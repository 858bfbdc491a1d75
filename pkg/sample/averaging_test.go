package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/golux/pkg/config"
	"github.com/itohio/golux/pkg/sensor"
)

func collect(out <-chan Sample) []Sample {
	var samples []Sample
	for s := range out {
		samples = append(samples, s)
	}
	return samples
}

func TestNewAveragingConverter_BlockAveraging(t *testing.T) {
	cfg := config.Default().Sensor
	converter := NewAveragingConverter(&cfg, 3, 10)

	in := make(chan sensor.RawSample, 10)
	out := converter(in)

	now := time.Now()
	for i := 0; i < 6; i++ {
		in <- sensor.RawSample{
			Timestamp: now.Add(time.Duration(i) * time.Millisecond),
			ADC:       uint16(1000 + i*100),
		}
	}
	close(in)

	samples := collect(out)
	require.Len(t, samples, 2)

	assert.Equal(t, uint16(1100), samples[0].ADC)
	assert.Equal(t, now.Add(2*time.Millisecond), samples[0].Timestamp)
	assert.Equal(t, uint16(1400), samples[1].ADC)
	assert.Equal(t, now.Add(5*time.Millisecond), samples[1].Timestamp)
	assert.InDelta(t, adcToLux(1100, &cfg), samples[0].Lux, 1e-6)
}

func TestNewAveragingConverter_FlushesRemainder(t *testing.T) {
	cfg := config.Default().Sensor
	in := make(chan sensor.RawSample, 10)
	out := NewAveragingConverter(&cfg, 4, 10)(in)

	in <- sensor.RawSample{ADC: 10}
	in <- sensor.RawSample{ADC: 11}
	close(in)

	samples := collect(out)
	require.Len(t, samples, 1)
	assert.Equal(t, uint16(11), samples[0].ADC) // 10.5 rounds up
}

func TestNewAveragingConverter_KeepsButton(t *testing.T) {
	cfg := config.Default().Sensor
	in := make(chan sensor.RawSample, 10)
	out := NewAveragingConverter(&cfg, 3, 10)(in)

	in <- sensor.RawSample{ADC: 1}
	in <- sensor.RawSample{ADC: 1, Button: true}
	in <- sensor.RawSample{ADC: 1}
	close(in)

	samples := collect(out)
	require.Len(t, samples, 1)
	assert.True(t, samples[0].Button)
}

func TestNewAveragingConverter_InvalidWindow(t *testing.T) {
	cfg := config.Default().Sensor
	in := make(chan sensor.RawSample, 10)
	out := NewAveragingConverter(&cfg, 0, 0)(in)

	in <- sensor.RawSample{ADC: 7}
	in <- sensor.RawSample{ADC: 9}
	close(in)

	samples := collect(out)
	require.Len(t, samples, 2)
	assert.Equal(t, uint16(7), samples[0].ADC)
	assert.Equal(t, uint16(9), samples[1].ADC)
}

func TestAverageAndConvertSamples_Empty(t *testing.T) {
	cfg := config.Default().Sensor
	assert.Equal(t, Sample{}, averageAndConvertSamples(nil, &cfg))
}
