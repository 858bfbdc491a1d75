package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/itohio/golux/pkg/aggregate"
)

const namespace = "golux"

// Metrics exports aggregation results as Prometheus metrics.
type Metrics struct {
	windows     prometheus.Counter
	failures    prometheus.Counter
	stddev      prometheus.Gauge
	tiers       *prometheus.CounterVec
	segments    *prometheus.GaugeVec
	compression prometheus.Histogram
	indicator   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		windows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_total",
			Help:      "Number of aggregated windows.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_failures_total",
			Help:      "Number of windows dropped because aggregation failed.",
		}),
		stddev: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_stddev",
			Help:      "Standard deviation of the last window.",
		}),
		tiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_tier_total",
			Help:      "Number of windows per variability tier.",
		}, []string{"tier"}),
		segments: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_segments",
			Help:      "Segment count chosen for the last window.",
		}, []string{"series"}),
		compression: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rle_compression_ratio",
			Help:      "Run-length encoded size divided by window size.",
			Buckets:   prometheus.LinearBuckets(1.0/aggregate.WindowSize, 1.0/aggregate.WindowSize, aggregate.WindowSize),
		}),
		indicator: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indicator_activations_total",
			Help:      "Number of indicator activations per tier.",
		}, []string{"tier"}),
	}

	for _, c := range []prometheus.Collector{m.windows, m.failures, m.stddev, m.tiers, m.segments, m.compression, m.indicator} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Report records r.
func (m *Metrics) Report(r *aggregate.Result) error {
	m.windows.Inc()
	m.stddev.Set(r.StdDev)
	m.tiers.WithLabelValues(r.Tier.String()).Inc()
	m.segments.WithLabelValues("paa").Set(float64(r.W))
	m.segments.WithLabelValues("sax").Set(float64(r.SaxW))
	m.compression.Observe(r.CompressionRatio())
	return nil
}

// WindowFailed counts a dropped window.
func (m *Metrics) WindowFailed(error) {
	m.failures.Inc()
}

// IndicatorActivated counts an indicator activation.
func (m *Metrics) IndicatorActivated(tier aggregate.Tier) {
	m.indicator.WithLabelValues(tier.String()).Inc()
}
