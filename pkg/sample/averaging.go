package sample

import (
	log "github.com/sirupsen/logrus"

	"github.com/itohio/golux/pkg/config"
	"github.com/itohio/golux/pkg/sensor"
)

// NewAveragingConverter creates a converter that averages every windowSize consecutive
// RawSamples into one Sample. This reduces ADC noise at the cost of sample rate.
// A button press anywhere in the block is kept.
func NewAveragingConverter(cfg *config.SensorConfig, windowSize int, bufSize int) Converter {
	if windowSize <= 0 {
		windowSize = 1 // No averaging if invalid
	}
	if bufSize <= 0 {
		bufSize = 100
	}

	return func(in <-chan sensor.RawSample) <-chan Sample {
		out := make(chan Sample, bufSize)

		go func() {
			defer close(out)

			buffer := make([]sensor.RawSample, 0, windowSize)
			emit := func() {
				select {
				case out <- averageAndConvertSamples(buffer, cfg):
				default:
					log.Warn("averaging converter output channel full")
				}
				buffer = buffer[:0]
			}

			for raw := range in {
				buffer = append(buffer, raw)
				if len(buffer) == windowSize {
					emit()
				}
			}

			// Input closed, output any remaining samples
			if len(buffer) > 0 {
				emit()
			}
		}()

		return out
	}
}

// averageAndConvertSamples averages a slice of RawSamples and converts to Sample.
// Uses the most recent sample's timestamp.
func averageAndConvertSamples(samples []sensor.RawSample, cfg *config.SensorConfig) Sample {
	if len(samples) == 0 {
		return Sample{}
	}

	var sum uint32
	var button bool
	for _, s := range samples {
		sum += uint32(s.ADC)
		button = button || s.Button
	}

	n := float64(len(samples))
	avg := sensor.RawSample{
		Timestamp: samples[len(samples)-1].Timestamp,
		ADC:       uint16((float64(sum) / n) + 0.5), // Round to nearest
		Button:    button,
	}

	return convertSample(avg, cfg)
}

// NewConverterFromConfig picks the plain or averaging converter from cfg.AverageSamples.
func NewConverterFromConfig(cfg *config.SensorConfig, bufSize int) Converter {
	if cfg.AverageSamples > 1 {
		return NewAveragingConverter(cfg, cfg.AverageSamples, bufSize)
	}
	return NewConverter(cfg, bufSize)
}
