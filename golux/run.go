package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/itohio/golux/pkg/config"
	"github.com/itohio/golux/pkg/indicator"
	"github.com/itohio/golux/pkg/node"
	"github.com/itohio/golux/pkg/report"
	"github.com/itohio/golux/pkg/sample"
	"github.com/itohio/golux/pkg/sensor"
)

var (
	runPortFlag    string
	runMockFlag    bool
	runFormatFlag  string
	runMetricsFlag string
	runKeyboard    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sample the sensor and report every window",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if runPortFlag != "" {
			cfg.Serial.Port = runPortFlag
		}
		if runMetricsFlag != "" {
			cfg.Metrics.Address = runMetricsFlag
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx, cfg)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runPortFlag, "port", "p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
	runCmd.Flags().BoolVar(&runMockFlag, "mock", false, "Use mocked sensor instead of serial port")
	runCmd.Flags().StringVarP(&runFormatFlag, "format", "f", "console", "Report format: console or table")
	runCmd.Flags().StringVar(&runMetricsFlag, "metrics-address", "", "Serve Prometheus metrics on this address (overrides config)")
	runCmd.Flags().BoolVar(&runKeyboard, "keyboard", true, "Treat Enter on stdin as a button press")
	rootCmd.AddCommand(runCmd)
}

func newDevice(cfg *config.Config) sensor.Device {
	if runMockFlag {
		return sensor.NewMock(&cfg.Mock)
	}
	return sensor.New(cfg.Serial.Port, cfg.Serial.BaudRate, sensor.DefaultBufferSize)
}

func newReporter(format string, w io.Writer) (report.Reporter, error) {
	switch format {
	case "console":
		return report.NewConsole(w), nil
	case "table":
		return report.NewTable(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	reporter, err := newReporter(runFormatFlag, os.Stdout)
	if err != nil {
		return err
	}

	opts := node.Options{
		SmoothingFactor:   cfg.Aggregation.SmoothingFactor,
		IndicatorDuration: cfg.Indicator.DurationTicks,
	}

	if cfg.Metrics.Address != "" {
		reg := prometheus.NewRegistry()
		metrics, err := report.NewMetrics(reg)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		reporter = report.Multi{reporter, metrics}
		opts.Observer = metrics

		srv := &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.WithField("address", srv.Addr).Info("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics server failed")
			}
		}()
		defer srv.Close()
	}

	var ind indicator.Indicator = indicator.Logger{}
	if cfg.Indicator.Color {
		ind = indicator.NewTerminal(os.Stdout)
	}

	device := newDevice(cfg)
	if err := device.Connect(); err != nil {
		return fmt.Errorf("failed to connect to sensor: %w", err)
	}
	defer device.Close()

	sampler := sample.NewSampler()
	go sampler.Run(sample.NewConverterFromConfig(&cfg.Sensor, 0)(device.Samples()))

	triggers := sampler.Triggers()
	if runKeyboard {
		triggers = merge(ctx, triggers, keyboard(ctx, os.Stdin))
	}

	ticker := time.NewTicker(cfg.Sampling.Interval)
	defer ticker.Stop()

	log.WithFields(log.Fields{
		"interval": cfg.Sampling.Interval,
		"mock":     runMockFlag,
		"port":     cfg.Serial.Port,
	}).Info("node started")

	n := node.New(sampler, reporter, ind, opts)
	if err := n.Run(ctx, ticker.C, triggers); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("node stopped")
	return nil
}

// keyboard emits an event for every line read from r.
func keyboard(ctx context.Context, r io.Reader) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// merge forwards events from a and b until both are closed or ctx is done.
func merge(ctx context.Context, a, b <-chan struct{}) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for a != nil || b != nil {
			var ok bool
			select {
			case <-ctx.Done():
				return
			case _, ok = <-a:
				if !ok {
					a = nil
					continue
				}
			case _, ok = <-b:
				if !ok {
					b = nil
					continue
				}
			}
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
