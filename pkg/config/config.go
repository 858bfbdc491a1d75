package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the node configuration.
type Config struct {
	Serial      SerialConfig      `yaml:"serial"`
	Sensor      SensorConfig      `yaml:"sensor"`
	Sampling    SamplingConfig    `yaml:"sampling"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Indicator   IndicatorConfig   `yaml:"indicator"`
	Mock        MockConfig        `yaml:"mock"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// SensorConfig describes the photoresistor front end used to turn ADC counts into lux.
type SensorConfig struct {
	VRef           float64 `yaml:"vref"`            // ADC reference voltage (V)
	Resolution     float64 `yaml:"resolution"`      // ADC full scale (counts)
	Resistor       float64 `yaml:"resistor"`        // Load resistor (Ohm)
	Gain           float64 `yaml:"gain"`            // Current to lux conversion factor
	AverageSamples int     `yaml:"average_samples"` // Number of ADC samples to average (0 = disabled, default)
}

// SamplingConfig contains the tick scheduling parameters.
type SamplingConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// AggregationConfig contains aggregation parameters.
type AggregationConfig struct {
	SmoothingFactor float64 `yaml:"smoothing_factor"`
}

// IndicatorConfig contains the tier indicator parameters.
type IndicatorConfig struct {
	DurationTicks int  `yaml:"duration_ticks"` // How many ticks the indicator stays on after a trigger
	Color         bool `yaml:"color"`
}

// MockConfig contains mock device configuration.
type MockConfig struct {
	Base         float64       `yaml:"base"`          // Mean ADC level (counts)
	Amplitude    float64       `yaml:"amplitude"`     // Slow light variation amplitude (counts)
	NoiseLevel   float64       `yaml:"noise_level"`   // Noise level (counts)
	Period       time.Duration `yaml:"period"`        // Period of the slow light variation
	ButtonPeriod time.Duration `yaml:"button_period"` // Time between simulated button presses (0 = never)
	SampleRate   time.Duration `yaml:"sample_rate"`   // Sample rate
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig contains the Prometheus endpoint configuration.
type MetricsConfig struct {
	Address string `yaml:"address"` // Empty disables the endpoint
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "/dev/ttyACM0",
			BaudRate: 115200,
		},
		Sensor: SensorConfig{
			VRef:           1.5,
			Resolution:     4096,
			Resistor:       100000,
			Gain:           0.625e9, // 0.625 * 1e6 * 1000
			AverageSamples: 0,
		},
		Sampling: SamplingConfig{
			Interval: 500 * time.Millisecond,
		},
		Aggregation: AggregationConfig{
			SmoothingFactor: 0.7,
		},
		Indicator: IndicatorConfig{
			DurationTicks: 10,
			Color:         true,
		},
		Mock: MockConfig{
			Base:         1200,
			Amplitude:    400,
			NoiseLevel:   30,
			Period:       30 * time.Second,
			ButtonPeriod: 0,
			SampleRate:   50 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports values that cannot be defaulted away.
func (c *Config) Validate() error {
	var errs []error

	if c.Aggregation.SmoothingFactor <= 0 || c.Aggregation.SmoothingFactor > 1 {
		errs = append(errs, fmt.Errorf("aggregation.smoothing_factor must be in (0, 1], got %v", c.Aggregation.SmoothingFactor))
	}
	if c.Sampling.Interval < 0 {
		errs = append(errs, fmt.Errorf("sampling.interval must not be negative, got %v", c.Sampling.Interval))
	}
	if c.Indicator.DurationTicks < 0 {
		errs = append(errs, fmt.Errorf("indicator.duration_ticks must not be negative, got %d", c.Indicator.DurationTicks))
	}
	if c.Mock.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("mock.sample_rate must be positive, got %v", c.Mock.SampleRate))
	}
	if c.Mock.Period < 0 {
		errs = append(errs, fmt.Errorf("mock.period must be positive, got %v", c.Mock.Period))
	}
	if c.Mock.ButtonPeriod < 0 {
		errs = append(errs, fmt.Errorf("mock.button_period must not be negative, got %v", c.Mock.ButtonPeriod))
	}
	if c.Sensor.AverageSamples < 0 {
		errs = append(errs, fmt.Errorf("sensor.average_samples must not be negative, got %d", c.Sensor.AverageSamples))
	}

	return errors.Join(errs...)
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Sensor.VRef == 0 {
		c.Sensor.VRef = def.Sensor.VRef
	}
	if c.Sensor.Resolution == 0 {
		c.Sensor.Resolution = def.Sensor.Resolution
	}
	if c.Sensor.Resistor == 0 {
		c.Sensor.Resistor = def.Sensor.Resistor
	}
	if c.Sensor.Gain == 0 {
		c.Sensor.Gain = def.Sensor.Gain
	}

	if c.Sampling.Interval == 0 {
		c.Sampling.Interval = def.Sampling.Interval
	}

	if c.Aggregation.SmoothingFactor == 0 {
		c.Aggregation.SmoothingFactor = def.Aggregation.SmoothingFactor
	}

	if c.Indicator.DurationTicks == 0 {
		c.Indicator.DurationTicks = def.Indicator.DurationTicks
	}

	if c.Mock.SampleRate == 0 {
		c.Mock.SampleRate = def.Mock.SampleRate
	}
	if c.Mock.Period == 0 {
		c.Mock.Period = def.Mock.Period
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
