package sensor

import (
	"context"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/itohio/golux/pkg/config"
)

// Mock simulates a light sensor board for testing and development.
type Mock struct {
	cfg *config.MockConfig

	samples   chan RawSample
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	// Simulation state
	startTime  time.Time
	lastButton time.Time
	step       uint32
}

// NewMock creates a new mocked device instance.
func NewMock(cfg *config.MockConfig) *Mock {
	if cfg == nil {
		def := config.Default().Mock
		cfg = &def
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		cfg:     cfg,
		samples: make(chan RawSample, DefaultBufferSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Connect simulates connecting to the device.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return ErrAlreadyConnected
	}

	m.connected = true
	m.startTime = time.Now()
	m.lastButton = m.startTime

	go m.generateSamples()

	return nil
}

// Close stops the mocked device. The samples channel is closed once the generator exits.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.connected = false

	return nil
}

// Samples returns the channel for reading samples.
func (m *Mock) Samples() <-chan RawSample {
	return m.samples
}

// IsConnected returns whether the device is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// generateSamples generates simulated samples.
func (m *Mock) generateSamples() {
	defer close(m.samples)

	rate := m.cfg.SampleRate
	if rate <= 0 {
		rate = config.Default().Mock.SampleRate
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case now := <-ticker.C:
			sample := m.generateSample(now)
			select {
			case m.samples <- sample:
			case <-m.ctx.Done():
				return
			default:
				// Channel full, skip
			}
		}
	}
}

// generateSample generates a single simulated sample at time now.
func (m *Mock) generateSample(now time.Time) RawSample {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := now.Sub(m.startTime)
	m.step++

	return RawSample{
		Timestamp: now,
		ADC:       m.lightLevel(elapsed, m.step),
		Button:    m.buttonPressed(now),
	}
}

// lightLevel models a photoresistor under slowly changing daylight with flicker noise.
func (m *Mock) lightLevel(elapsed time.Duration, step uint32) uint16 {
	phase := float32(0)
	if m.cfg.Period > 0 {
		phase = 2 * math32.Pi * float32(elapsed.Seconds()/m.cfg.Period.Seconds())
	}

	level := float32(m.cfg.Base) + float32(m.cfg.Amplitude)*math32.Sin(phase)

	// Deterministic pseudo noise: two incommensurate tones.
	noise := (math32.Sin(float32(step)*1.7) + math32.Cos(float32(step)*0.31)) * 0.5
	level += noise * float32(m.cfg.NoiseLevel)

	return clampADC(level)
}

// buttonPressed reports the button as held for one sample every ButtonPeriod.
func (m *Mock) buttonPressed(now time.Time) bool {
	if m.cfg.ButtonPeriod <= 0 {
		return false
	}
	if now.Sub(m.lastButton) < m.cfg.ButtonPeriod {
		return false
	}
	m.lastButton = now
	return true
}

func clampADC(v float32) uint16 {
	switch {
	case v < 0 || math32.IsNaN(v):
		return 0
	case v > MaxADC:
		return MaxADC
	default:
		return uint16(v)
	}
}
