package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/itohio/golux/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "golux",
	Short: "Light sensor node with adaptive window aggregation",
	Long: `golux samples a light sensor at a fixed interval, collects the readings into
windows of 12 and prints PAA, RLE, SAX and EMA summaries of every window.`,
	SilenceUsage: true,
}

// flags
var (
	configFlag  string
	verboseFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file and configures log verbosity.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if verboseFlag {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
