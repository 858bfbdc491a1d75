// Package node runs the sampling node: it buffers one reading per tick, aggregates
// every full window and lights the tier indicator on demand.
package node

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/itohio/golux/pkg/aggregate"
	"github.com/itohio/golux/pkg/indicator"
	"github.com/itohio/golux/pkg/report"
	"github.com/itohio/golux/pkg/window"
)

// Sampler provides the current light reading.
type Sampler interface {
	ReadRaw() float64
}

// Observer is notified about events that are not part of a result.
type Observer interface {
	WindowFailed(err error)
	IndicatorActivated(tier aggregate.Tier)
}

// Options configures a Node.
type Options struct {
	SmoothingFactor   float64
	IndicatorDuration int // Ticks the indicator stays lit after a trigger
	Observer          Observer
}

// Node is the event driven aggregation state machine. It has a single state,
// awaiting an event, and two triggers: Tick and Trigger. It is not safe for
// concurrent use; Run serializes both triggers on one goroutine.
type Node struct {
	sampler   Sampler
	reporter  report.Reporter
	indicator indicator.Indicator
	observer  Observer

	alpha    float64
	duration int

	buffer *window.Buffer

	// stddev of the last completed window; drives the indicator color
	stddev float64
	// ticks left before the indicator switches off; 0 means off
	countdown int
}

// New creates a node. Zero options fall back to the default smoothing factor and a 10 tick indicator.
func New(sampler Sampler, reporter report.Reporter, ind indicator.Indicator, opts Options) *Node {
	if opts.SmoothingFactor == 0 {
		opts.SmoothingFactor = aggregate.DefaultSmoothingFactor
	}
	if opts.IndicatorDuration == 0 {
		opts.IndicatorDuration = 10
	}

	return &Node{
		sampler:   sampler,
		reporter:  reporter,
		indicator: ind,
		observer:  opts.Observer,
		alpha:     opts.SmoothingFactor,
		duration:  opts.IndicatorDuration,
		buffer:    window.New(aggregate.WindowSize),
	}
}

// Run waits for events until ctx is done or ticks is closed. A nil triggers channel disables the button.
func (n *Node) Run(ctx context.Context, ticks <-chan time.Time, triggers <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			n.Tick()
		case _, ok := <-triggers:
			if !ok {
				triggers = nil
				continue
			}
			n.Trigger()
		}
	}
}

// Tick takes one reading and aggregates the window once it is full,
// then advances the indicator countdown.
func (n *Node) Tick() {
	reading := window.Truncate(n.sampler.ReadRaw())
	log.WithField("reading", int(reading)).Debug("reading")

	if n.buffer.Add(reading) {
		if err := n.aggregate(); err != nil {
			log.WithError(err).Error("window dropped")
			if n.observer != nil {
				n.observer.WindowFailed(err)
			}
		}
		n.buffer.Reset()
	}

	if n.countdown > 0 {
		n.countdown--
		if n.countdown == 0 {
			n.indicator.Off()
		}
	}
}

// Trigger lights the indicator with the tier of the last completed window.
func (n *Node) Trigger() {
	tier := aggregate.ClassifyTier(n.stddev)

	n.indicator.Off()
	n.indicator.On(tier)
	n.countdown = n.duration

	log.WithFields(log.Fields{"tier": tier, "stddev": n.stddev}).Debug("indicator triggered")
	if n.observer != nil {
		n.observer.IndicatorActivated(tier)
	}
}

// aggregate processes the full window and hands the result to the reporter.
func (n *Node) aggregate() error {
	r, err := aggregate.Process(n.buffer.Window(), n.alpha)
	if err != nil {
		return fmt.Errorf("failed to aggregate window: %w", err)
	}

	n.stddev = r.StdDev

	log.WithFields(log.Fields{
		"stddev": r.StdDev,
		"tier":   r.Tier,
		"w":      r.W,
		"sax_w":  r.SaxW,
		"sax":    r.SAX.Symbols,
	}).Info("window aggregated")
	if r.SAX.Constant {
		log.Warn("constant window, SAX word is neutral")
	}

	if err := n.reporter.Report(r); err != nil {
		return fmt.Errorf("failed to report window: %w", err)
	}
	return nil
}

// Buffered returns the number of readings in the current window.
func (n *Node) Buffered() int {
	return n.buffer.Len()
}

// IndicatorRemaining returns the ticks left before the indicator switches off.
func (n *Node) IndicatorRemaining() int {
	return n.countdown
}
