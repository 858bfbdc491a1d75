package sample

import (
	"sync"
)

// Sampler keeps the most recent converted sample so a periodic consumer can read
// the current light level, and turns button presses into trigger events.
type Sampler struct {
	mu      sync.RWMutex
	latest  Sample
	valid   bool
	pressed bool

	triggers chan struct{}
}

// NewSampler creates an idle sampler. Call Run to feed it.
func NewSampler() *Sampler {
	return &Sampler{
		triggers: make(chan struct{}, 1),
	}
}

// Run consumes samples until in is closed, then closes the trigger channel.
func (s *Sampler) Run(in <-chan Sample) {
	defer close(s.triggers)

	for smp := range in {
		if s.update(smp) {
			select {
			case s.triggers <- struct{}{}:
			default:
				// A press is already pending
			}
		}
	}
}

// update stores smp and reports whether it is a button press (rising edge).
func (s *Sampler) update(smp Sample) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rising := smp.Button && !s.pressed
	s.pressed = smp.Button
	s.latest = smp
	s.valid = true

	return rising
}

// ReadRaw returns the latest light intensity in lux, or 0 before the first sample.
func (s *Sampler) ReadRaw() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest.Lux
}

// Latest returns the latest sample and whether one has been received.
func (s *Sampler) Latest() (Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.valid
}

// Triggers returns the channel of button presses.
func (s *Sampler) Triggers() <-chan struct{} {
	return s.triggers
}
