package sample

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/itohio/golux/pkg/config"
	"github.com/itohio/golux/pkg/sensor"
)

// Sample represents a processed measurement sample with physical values.
type Sample struct {
	Timestamp time.Time
	ADC       uint16  // Raw (possibly averaged) ADC counts
	Lux       float64 // Light intensity (lx)
	Button    bool
}

// Converter is a function type that converts RawSample channel to Sample channel.
type Converter func(in <-chan sensor.RawSample) <-chan Sample

// NewConverter creates a converter function that transforms RawSample to Sample.
func NewConverter(cfg *config.SensorConfig, bufSize int) Converter {
	if bufSize <= 0 {
		bufSize = 100
	}

	return func(in <-chan sensor.RawSample) <-chan Sample {
		out := make(chan Sample, bufSize)

		go func() {
			defer close(out)

			for raw := range in {
				select {
				case out <- convertSample(raw, cfg):
				case <-time.After(time.Second):
					log.Warn("converter output channel full, dropping sample")
				}
			}
		}()

		return out
	}
}

// convertSample converts a RawSample to Sample using the sensor configuration.
func convertSample(raw sensor.RawSample, cfg *config.SensorConfig) Sample {
	return Sample{
		Timestamp: raw.Timestamp,
		ADC:       raw.ADC,
		Lux:       adcToLux(raw.ADC, cfg),
		Button:    raw.Button,
	}
}

// adcToLux converts a photoresistor ADC reading to light intensity.
// V = VRef * adc / Resolution, I = V / R, lux = Gain * I.
// Computed in float32 to match the firmware arithmetic.
func adcToLux(adc uint16, cfg *config.SensorConfig) float64 {
	if cfg.Resolution == 0 || cfg.Resistor == 0 {
		return 0
	}
	v := float32(cfg.VRef) * float32(adc) / float32(cfg.Resolution)
	i := v / float32(cfg.Resistor)
	return float64(float32(cfg.Gain) * i)
}
