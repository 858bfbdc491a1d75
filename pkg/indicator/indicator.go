// Package indicator shows the variability tier of the last window on an external light.
package indicator

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/itohio/golux/pkg/aggregate"
)

// Indicator is an externally visible tier light.
type Indicator interface {
	On(tier aggregate.Tier)
	Off()
}

var (
	_ Indicator = (*Terminal)(nil)
	_ Indicator = (*Logger)(nil)
)

// Terminal draws a colored LED on a terminal: green for low, blue for medium and red for high variability.
type Terminal struct {
	w       io.Writer
	mu      sync.Mutex
	lit     bool
	current aggregate.Tier
}

// NewTerminal creates a terminal indicator writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

var tierColors = map[aggregate.Tier]*color.Color{
	aggregate.TierLow:    color.New(color.FgGreen, color.Bold),
	aggregate.TierMedium: color.New(color.FgBlue, color.Bold),
	aggregate.TierHigh:   color.New(color.FgRed, color.Bold),
}

// On lights the LED for tier.
func (t *Terminal) On(tier aggregate.Tier) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := tierColors[tier]
	if !ok {
		c = color.New(color.FgWhite)
	}
	t.lit = true
	t.current = tier
	fmt.Fprintf(t.w, "LED %s (%s)\n", c.Sprint("●"), tier)
}

// Off switches the LED off. Switching an unlit LED off prints nothing.
func (t *Terminal) Off() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.lit {
		return
	}
	t.lit = false
	fmt.Fprintln(t.w, "LED ○ (off)")
}

// Lit returns the shown tier and whether the LED is on.
func (t *Terminal) Lit() (aggregate.Tier, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.lit
}

// Logger reports indicator changes through the logger.
type Logger struct{}

// On logs the tier.
func (Logger) On(tier aggregate.Tier) {
	log.WithField("tier", tier).Info("indicator on")
}

// Off logs the switch off.
func (Logger) Off() {
	log.Debug("indicator off")
}
